// ABOUTME: Scripted ChatModel double shared by core tests
// ABOUTME: Records every call so tests can assert what the model saw
package core

import (
	"context"
	"fmt"

	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/models"
)

type stubCall struct {
	structured bool
	messages   []models.Message
	schema     llm.ResponseSchema
}

// stubModel answers structured calls with label and free-text calls with
// a reply that names the system prompt it received
type stubModel struct {
	label      string
	rawLabel   string // raw structured reply; overrides label when set
	chatErr    error
	classErr   error
	calls      []stubCall
	structured int
	chats      int
}

func (m *stubModel) Chat(_ context.Context, messages []models.Message) (string, error) {
	m.calls = append(m.calls, stubCall{messages: append([]models.Message(nil), messages...)})
	m.chats++
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return replyFor(messages), nil
}

func (m *stubModel) ChatStructured(_ context.Context, messages []models.Message, schema llm.ResponseSchema) (string, error) {
	m.calls = append(m.calls, stubCall{structured: true, messages: append([]models.Message(nil), messages...), schema: schema})
	m.structured++
	if m.classErr != nil {
		return "", m.classErr
	}
	if m.rawLabel != "" {
		return m.rawLabel, nil
	}
	return fmt.Sprintf(`{"message_type":%q}`, m.label), nil
}

func (m *stubModel) total() int {
	return len(m.calls)
}

// replyFor tags the reply with the branch whose prompt was used
func replyFor(messages []models.Message) string {
	last := messages[len(messages)-1].Content
	if messages[0].Role == models.RoleSystem {
		switch messages[0].Content {
		case therapistPrompt:
			return "therapist: " + last
		case logicalPrompt:
			return "logical: " + last
		}
	}
	return "echo: " + last
}
