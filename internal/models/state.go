// ABOUTME: Conversation state threaded through the routing graph
// ABOUTME: Messages only grow; the label is recomputed every turn
package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrEmptyConversation is returned when a step needs a message and there is none
var ErrEmptyConversation = errors.New("conversation has no messages")

// State is the conversation record owned by the turn loop
type State struct {
	Messages []Message `json:"messages"`
	Label    Label     `json:"message_type,omitempty"`
}

// NewState creates a State from the given messages with validation
func NewState(messages ...Message) (State, error) {
	for i, m := range messages {
		if err := m.Validate(); err != nil {
			return State{}, fmt.Errorf("message %d: %w", i, err)
		}
	}
	return State{Messages: slices.Clone(messages)}, nil
}

// Validate checks every message role and the label field
func (s State) Validate() error {
	for i, m := range s.Messages {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	if s.Label != LabelUnset && !s.Label.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, s.Label)
	}
	return nil
}

// Append returns a copy of s with m added to the end.
// The receiver's backing array is never written to.
func (s State) Append(m Message) State {
	s.Messages = append(slices.Clip(s.Messages), m)
	return s
}

// WithLabel returns a copy of s with the label replaced
func (s State) WithLabel(l Label) State {
	s.Label = l
	return s
}

// Last returns the most recent message
func (s State) Last() (Message, error) {
	if len(s.Messages) == 0 {
		return Message{}, ErrEmptyConversation
	}
	return s.Messages[len(s.Messages)-1], nil
}

// Len returns the number of messages
func (s State) Len() int {
	return len(s.Messages)
}
