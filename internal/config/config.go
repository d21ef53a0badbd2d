// ABOUTME: Centralized configuration for the chatroute programs
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Provider names a model backend
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

const (
	// DefaultOpenAIModel matches the model the scripts were written against
	DefaultOpenAIModel = "gpt-4o"
	// DefaultOllamaModel is used when the ollama provider is selected without a model
	DefaultOllamaModel = "llama3.2"
)

// Config holds all configuration for the chatroute programs
type Config struct {
	Provider Provider
	Model    string

	// OpenAI settings. An empty key is allowed here; the client
	// reports it on first use.
	OpenAIKey     string
	OpenAIBaseURL string

	// Temperature is nil when the provider default should be used
	Temperature *float32

	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Provider:      Provider(strings.ToLower(getEnv("CHATROUTE_PROVIDER", string(ProviderOpenAI)))),
		Model:         os.Getenv("CHATROUTE_MODEL"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		LogLevel:      strings.ToLower(getEnv("CHATROUTE_LOG_LEVEL", "warn")),
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel(cfg.Provider)
	}

	if v := os.Getenv("CHATROUTE_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("CHATROUTE_TEMPERATURE must be a number, got %q", v)
		}
		t := float32(f)
		cfg.Temperature = &t
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("CHATROUTE_PROVIDER must be openai or ollama, got %q", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("CHATROUTE_MODEL must not be empty")
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("CHATROUTE_TEMPERATURE must be 0-2, got %f", *c.Temperature)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CHATROUTE_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

func defaultModel(p Provider) string {
	if p == ProviderOllama {
		return DefaultOllamaModel
	}
	return DefaultOpenAIModel
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
