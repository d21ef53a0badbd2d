// ABOUTME: Builds the configured model collaborator
// ABOUTME: Selects between the OpenAI and Ollama providers
package provider

import (
	"fmt"

	"github.com/harper/chatroute/internal/config"
	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/llm/ollama"
)

// New creates a ChatModel for the configured provider
func New(cfg *config.Config) (llm.ChatModel, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return llm.NewOpenAIClient(llm.ClientConfig{
			APIKey:      cfg.OpenAIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		}), nil
	case config.ProviderOllama:
		return ollama.NewClient(cfg.Model, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
