// ABOUTME: Ollama chat client for locally hosted models
// ABOUTME: Structured replies pass the JSON schema as the request format
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/models"
	"github.com/ollama/ollama/api"
)

type Client struct {
	client      *api.Client
	model       string
	temperature *float32
}

// NewClient creates a client from OLLAMA_HOST (or the local default)
func NewClient(model string, temperature *float32) (*Client, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &Client{client: client, model: model, temperature: temperature}, nil
}

// NewClientWithBase creates a client against an explicit server URL
func NewClientWithBase(base *url.URL, httpClient *http.Client, model string) *Client {
	return &Client{client: api.NewClient(base, httpClient), model: model}
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

func (c *Client) Chat(ctx context.Context, messages []models.Message) (string, error) {
	return c.chat(ctx, c.request(messages))
}

func (c *Client) ChatStructured(ctx context.Context, messages []models.Message, schema llm.ResponseSchema) (string, error) {
	format, err := json.Marshal(&schema.Definition)
	if err != nil {
		return "", fmt.Errorf("encode %s schema: %w", schema.Name, err)
	}
	req := c.request(messages)
	req.Format = format
	return c.chat(ctx, req)
}

func (c *Client) request(messages []models.Message) *api.ChatRequest {
	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: make([]api.Message, len(messages)),
		Stream:   &stream,
	}
	for i, m := range messages {
		req.Messages[i] = api.Message{Role: string(m.Role), Content: m.Content}
	}
	if c.temperature != nil {
		req.Options = map[string]any{"temperature": *c.temperature}
	}
	return req
}

func (c *Client) chat(ctx context.Context, req *api.ChatRequest) (string, error) {
	var content strings.Builder
	err := c.client.Chat(ctx, req, func(r api.ChatResponse) error {
		content.WriteString(r.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat failed: %w", err)
	}
	if content.Len() == 0 {
		return "", fmt.Errorf("ollama chat: %w", llm.ErrEmptyResponse)
	}
	return content.String(), nil
}
