// ABOUTME: Model collaborator interface shared by all providers
// ABOUTME: Free-text chat plus schema-constrained structured chat
package llm

import (
	"context"
	"errors"

	"github.com/harper/chatroute/internal/models"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// ErrMissingAPIKey is returned on first use when no API key was configured
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// ErrEmptyResponse is returned when the provider answers without content
var ErrEmptyResponse = errors.New("model returned no content")

// ResponseSchema constrains a structured reply to a JSON schema
type ResponseSchema struct {
	Name        string
	Description string
	Definition  jsonschema.Definition
}

// ChatModel is the model invocation collaborator
type ChatModel interface {
	// Chat sends messages and returns the reply text
	Chat(ctx context.Context, messages []models.Message) (string, error)

	// ChatStructured sends messages and returns the raw JSON reply,
	// decoded against schema by the provider
	ChatStructured(ctx context.Context, messages []models.Message, schema ResponseSchema) (string, error)
}
