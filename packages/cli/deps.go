package cli

import (
	"context"

	"reponavigator/packages/ai"
	"reponavigator/packages/config"
	"reponavigator/packages/guide"
	"reponavigator/packages/repository"
)

// buildPipeline wires the GitHub source and the model client. Commands load
// creds before reading any input.
func buildPipeline(ctx context.Context, cfg *config.Config, creds config.Credentials) (*guide.Pipeline, func(), error) {
	llm, err := ai.NewClient(ctx, cfg.AI, creds.GeminiAPIKey)
	if err != nil {
		return nil, nil, err
	}

	source := repository.NewClient(repository.NewGitHubClient(ctx, creds.GitHubToken))
	pipeline := guide.NewPipeline(source, guide.NewGenerator(llm, cfg.Guide), cfg)
	return pipeline, func() { _ = llm.Close() }, nil
}

// buildInspector wires only the GitHub side.
func buildInspector(ctx context.Context, cfg *config.Config, token string) *guide.Pipeline {
	source := repository.NewClient(repository.NewGitHubClient(ctx, token))
	return guide.NewPipeline(source, nil, cfg)
}
