// ABOUTME: OpenAI chat completions client for free-text and structured replies
// ABOUTME: Structured replies use the json_schema response format in strict mode
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/chatroute/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature *float32
}

// OpenAIClient wraps the OpenAI API client
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature *float32
	apiKeySet   bool
}

// NewOpenAIClient creates a new OpenAI client. A missing API key is not
// an error here; every call fails with ErrMissingAPIKey instead.
func NewOpenAIClient(config ClientConfig) *OpenAIClient {
	cfg := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(config.BaseURL, "/")
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       config.Model,
		temperature: config.Temperature,
		apiKeySet:   config.APIKey != "",
	}
}

// Model returns the configured model identifier
func (c *OpenAIClient) Model() string {
	return c.model
}

// Chat sends messages and returns the first choice's content
func (c *OpenAIClient) Chat(ctx context.Context, messages []models.Message) (string, error) {
	return c.complete(ctx, c.request(messages))
}

// ChatStructured sends messages with a strict JSON schema response format
func (c *OpenAIClient) ChatStructured(ctx context.Context, messages []models.Message, schema ResponseSchema) (string, error) {
	req := c.request(messages)
	req.ResponseFormat = &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:        schema.Name,
			Description: schema.Description,
			Schema:      &schema.Definition,
			Strict:      true,
		},
	}
	return c.complete(ctx, req)
}

func (c *OpenAIClient) request(messages []models.Message) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toOpenAIMessages(messages),
	}
	if c.temperature != nil {
		req.Temperature = *c.temperature
	}
	return req
}

func (c *OpenAIClient) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	if !c.apiKeySet {
		return "", ErrMissingAPIKey
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: %w", ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return "", fmt.Errorf("openai refused request: %s", choice.Message.Refusal)
	}
	return choice.Message.Content, nil
}

func toOpenAIMessages(messages []models.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return out
}
