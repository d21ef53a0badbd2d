// ABOUTME: Process start-up shared by both programs
// ABOUTME: Loads .env and environment config, builds the logger and model once
package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/harper/chatroute/internal/config"
	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/logging"
	"github.com/joho/godotenv"
)

// ModelFactory builds the model collaborator from config
type ModelFactory func(cfg *config.Config) (llm.ChatModel, error)

// Options are the command-line switches that affect start-up
type Options struct {
	Verbose bool
	Quiet   bool
	Stderr  io.Writer
	EnvFile string // optional; defaults to .env in the working directory
}

// App bundles what every command needs
type App struct {
	Config *config.Config
	Logger *log.Logger
	Model  llm.ChatModel
}

// Setup loads configuration and builds the logger and model
func Setup(opts Options, newModel ModelFactory) (*App, error) {
	// Load .env file if it exists (for API keys)
	var envErr error
	if opts.EnvFile != "" {
		envErr = godotenv.Load(opts.EnvFile)
	} else {
		envErr = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(opts.Stderr, logging.Options{
		Level:   cfg.LogLevel,
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}
	if cfg.Provider == config.ProviderOpenAI && cfg.OpenAIKey == "" {
		logger.Warn("OPENAI_API_KEY not set - model calls will fail")
	}

	model, err := newModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s client: %w", cfg.Provider, err)
	}
	logger.Debug("model ready", "provider", cfg.Provider, "model", cfg.Model)

	return &App{Config: cfg, Logger: logger, Model: model}, nil
}
