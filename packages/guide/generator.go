package guide

import (
	"context"
	"log/slog"

	"reponavigator/packages/ai"
	"reponavigator/packages/config"
	"reponavigator/types"
)

// Generator turns README text and the important-file list into a guide.
type Generator struct {
	llm ai.Client
	cfg config.GuideConfig
}

func NewGenerator(llm ai.Client, cfg config.GuideConfig) *Generator {
	return &Generator{llm: llm, cfg: cfg}
}

// TourPrompt returns exactly what GenerateGuide sends to the model.
func (g *Generator) TourPrompt(readme string, importantFiles []string) string {
	readme = Truncate(readme, g.cfg.TourReadmeMaxChars)
	files := fileListing(importantFiles, g.cfg.EmptyFilesPlaceholder, g.cfg.ImportantFilesMaxChars)
	return BuildTourPrompt(readme, files)
}

// SummaryPrompt returns exactly what Summarize sends to the model.
func (g *Generator) SummaryPrompt(readme string) string {
	return BuildSummaryPrompt(Truncate(readme, g.cfg.SummaryReadmeMaxChars))
}

// GenerateGuide produces the guided developer tour. The model output is
// returned as is.
func (g *Generator) GenerateGuide(ctx context.Context, readme string, importantFiles []string) (string, error) {
	return g.generate(ctx, "generate guide", g.TourPrompt(readme, importantFiles))
}

// Summarize produces the short README summary.
func (g *Generator) Summarize(ctx context.Context, readme string) (string, error) {
	return g.generate(ctx, "summarize readme", g.SummaryPrompt(readme))
}

func (g *Generator) generate(ctx context.Context, op, prompt string) (string, error) {
	slog.Debug("Prompt assembled", "op", op, "client", g.llm.Name(), "promptLength", len(prompt))

	text, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		slog.Error("Text generation failed", "op", op, "client", g.llm.Name(), "error", err)
		return "", types.NewError(types.ErrGenerationFailed, op, 0, err)
	}
	return text, nil
}
