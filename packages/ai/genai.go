package ai

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// GenAIClient talks to Gemini through the google.golang.org/genai SDK.
type GenAIClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient creates a Gemini API backed client.
func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	return newGenAIClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newGenAIClient(ctx context.Context, cc *genai.ClientConfig, model string) (*GenAIClient, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GenAIClient{client: client, model: model}, nil
}

func (g *GenAIClient) Name() string { return "genai:" + g.model }

// Close is a no-op; the genai client has no resources to release.
func (g *GenAIClient) Close() error { return nil }

func (g *GenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	slog.Info("Sending request to Gemini API", "model", g.model, "promptLength", len(prompt))

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if result == nil || result.Text() == "" {
		return "", ErrNoContent
	}

	text := result.Text()
	slog.Info("Successfully generated content", "contentLength", len(text))
	return text, nil
}
