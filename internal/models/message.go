// ABOUTME: Message and Role types for the conversation record
// ABOUTME: Roles are a closed set validated at construction
package models

import (
	"errors"
	"fmt"
)

// Role identifies who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ErrInvalidRole is returned when a message carries a role outside the known set
var ErrInvalidRole = errors.New("invalid message role")

// IsValid checks if the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message is a single role/content entry in a conversation
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Validate checks the message role
func (m Message) Validate() error {
	if !m.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, m.Role)
	}
	return nil
}

// UserMessage builds a user-role message
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant-role message
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// SystemMessage builds a system-role message
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}
