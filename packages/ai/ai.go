package ai

import (
	"context"
	"errors"
	"fmt"

	"reponavigator/packages/config"
)

// ErrNoContent is returned when the model answers without any text.
var ErrNoContent = errors.New("no content generated")

// Client sends one prompt to a text-generation model and returns its text.
// Calls are single blocking round-trips: no streaming, no retries.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
	Close() error
}

// NewClient builds the backend selected in cfg.
func NewClient(ctx context.Context, cfg config.AIConfig, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set in environment", config.EnvGeminiAPIKey)
	}

	switch cfg.Backend {
	case config.BackendGenerativeAI, "":
		return NewGeminiClient(ctx, apiKey, cfg.Model)
	case config.BackendGenAI:
		return NewGenAIClient(ctx, apiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown ai backend %q", cfg.Backend)
	}
}
