// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"strings"
	"testing"
)

var envKeys = []string{
	"CHATROUTE_PROVIDER",
	"CHATROUTE_MODEL",
	"CHATROUTE_TEMPERATURE",
	"CHATROUTE_LOG_LEVEL",
	"OPENAI_API_KEY",
	"OPENAI_BASE_URL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %s, want openai", cfg.Provider)
	}
	if cfg.Model != DefaultOpenAIModel {
		t.Errorf("Model = %s, want %s", cfg.Model, DefaultOpenAIModel)
	}
	if cfg.OpenAIKey != "" {
		t.Errorf("OpenAIKey = %q, want empty", cfg.OpenAIKey)
	}
	if cfg.Temperature != nil {
		t.Errorf("Temperature = %v, want nil", *cfg.Temperature)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATROUTE_PROVIDER", "OpenAI")
	t.Setenv("CHATROUTE_MODEL", "gpt-4o-mini")
	t.Setenv("CHATROUTE_TEMPERATURE", "0.2")
	t.Setenv("CHATROUTE_LOG_LEVEL", "DEBUG")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %s, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %s, want gpt-4o-mini", cfg.Model)
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.2) {
		t.Errorf("Temperature = %v, want 0.2", cfg.Temperature)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.OpenAIKey != "test-key" {
		t.Errorf("OpenAIKey = %s, want test-key", cfg.OpenAIKey)
	}
	if cfg.OpenAIBaseURL != "http://localhost:8080/v1" {
		t.Errorf("OpenAIBaseURL = %s", cfg.OpenAIBaseURL)
	}
}

func TestLoad_OllamaDefaultModel(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATROUTE_PROVIDER", "ollama")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Model != DefaultOllamaModel {
		t.Errorf("Model = %s, want %s", cfg.Model, DefaultOllamaModel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		errPart string
	}{
		{"unknown provider", "CHATROUTE_PROVIDER", "anthropic", "CHATROUTE_PROVIDER"},
		{"bad temperature", "CHATROUTE_TEMPERATURE", "warm", "CHATROUTE_TEMPERATURE"},
		{"temperature out of range", "CHATROUTE_TEMPERATURE", "3.5", "0-2"},
		{"bad log level", "CHATROUTE_LOG_LEVEL", "trace", "CHATROUTE_LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %v, want mention of %s", err, tt.errPart)
			}
		})
	}
}
