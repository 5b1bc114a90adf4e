package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient talks to Gemini through the generative-ai-go SDK.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// NewGeminiClient creates the SDK client once; it is reused for every call.
// The model runs with the SDK's default sampling settings.
func NewGeminiClient(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		slog.Error("Failed to create Gemini client", "error", err)
		return nil, err
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(model),
		name:   model,
	}, nil
}

func (g *GeminiClient) Name() string { return "gemini:" + g.name }

func (g *GeminiClient) Close() error { return g.client.Close() }

// Generate sends prompt as a single text part.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	slog.Info("Sending request to Gemini API", "model", g.name, "promptLength", len(prompt))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Error("Failed to generate content", "error", err)
		return "", err
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	slog.Info("Successfully generated content", "contentLength", len(text))
	return text, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoContent
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrNoContent
	}

	var b strings.Builder
	for _, part := range content.Parts {
		switch p := part.(type) {
		case genai.Text:
			b.WriteString(string(p))
		default:
			slog.Debug("Skipping non-text response part", "type", fmt.Sprintf("%T", part))
		}
	}
	if b.Len() == 0 {
		return "", ErrNoContent
	}
	return b.String(), nil
}
