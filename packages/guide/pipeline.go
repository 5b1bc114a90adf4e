package guide

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"reponavigator/packages/config"
	"reponavigator/packages/repository"
	"reponavigator/types"
)

// Source is the repository-hosting side of the pipeline.
// *repository.Client implements it.
type Source interface {
	Resolve(ctx context.Context, owner, name string) (types.RepositoryHandle, error)
	FetchReadme(ctx context.Context, handle types.RepositoryHandle) (string, error)
	FetchTree(ctx context.Context, handle types.RepositoryHandle) ([]types.TreeEntry, error)
}

// Stage names a pipeline step for progress reporting.
type Stage string

const (
	StageResolve  Stage = "resolve"
	StageReadme   Stage = "readme"
	StageTree     Stage = "tree"
	StageGenerate Stage = "generate"
)

// Pipeline composes resolver, fetchers, filter, selector and generator.
// It keeps no state between runs.
type Pipeline struct {
	source    Source
	generator *Generator
	filter    repository.TreeFilter
	selector  repository.Selector
	parallel  bool

	// OnStage, when set, is called before each stage starts.
	OnStage func(Stage)
}

func NewPipeline(source Source, generator *Generator, cfg *config.Config) *Pipeline {
	return &Pipeline{
		source:    source,
		generator: generator,
		filter:    repository.TreeFilter{MaxDepth: cfg.Tree.MaxDepth, IgnoreDirs: cfg.Tree.IgnoreDirs},
		selector:  repository.Selector{Suffixes: cfg.Tree.ImportantFiles, Dedupe: cfg.Tree.DedupeImportant},
		parallel:  cfg.Pipeline.ParallelFetch,
	}
}

func (p *Pipeline) stage(s Stage) {
	if p.OnStage != nil {
		p.OnStage(s)
	}
}

// Run produces a guide for owner/name. Any failure ends the run and no
// partial result is returned.
func (p *Pipeline) Run(ctx context.Context, owner, name string) (*types.GuideResult, error) {
	p.stage(StageResolve)
	handle, err := p.source.Resolve(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	readme, entries, err := p.fetch(ctx, handle)
	if err != nil {
		return nil, err
	}

	files := p.filter.Filter(entries)
	important := p.selector.Select(files)
	slog.Info("Repository tree filtered",
		"repo", handle.FullName,
		"entries", len(entries),
		"files", len(files),
		"important", len(important))

	p.stage(StageGenerate)
	text, err := p.generator.GenerateGuide(ctx, readme, important)
	if err != nil {
		return nil, err
	}

	slog.Info("Guide generated", "repo", handle.FullName, "contentLength", len(text))
	return &types.GuideResult{
		Repository:     handle,
		Files:          files,
		ImportantFiles: important,
		Guide:          text,
	}, nil
}

// fetch reads README and tree. Sequentially the README goes first, so a
// missing README means the tree is never requested. In parallel mode the
// first failure cancels the other call and a README error still wins.
func (p *Pipeline) fetch(ctx context.Context, handle types.RepositoryHandle) (string, []types.TreeEntry, error) {
	if !p.parallel {
		p.stage(StageReadme)
		readme, err := p.source.FetchReadme(ctx, handle)
		if err != nil {
			return "", nil, err
		}
		p.stage(StageTree)
		entries, err := p.source.FetchTree(ctx, handle)
		if err != nil {
			return "", nil, err
		}
		return readme, entries, nil
	}

	var (
		readme             string
		entries            []types.TreeEntry
		readmeErr, treeErr error
	)
	p.stage(StageReadme)
	p.stage(StageTree)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		readme, readmeErr = p.source.FetchReadme(gctx, handle)
		return readmeErr
	})
	g.Go(func() error {
		entries, treeErr = p.source.FetchTree(gctx, handle)
		return treeErr
	})
	if err := g.Wait(); err == nil {
		return readme, entries, nil
	}

	// a fetch cut short by the other one's failure does not count
	switch {
	case readmeErr != nil && !errors.Is(readmeErr, context.Canceled):
		return "", nil, readmeErr
	case treeErr != nil:
		return "", nil, treeErr
	default:
		return "", nil, readmeErr
	}
}

// Summarize produces the README summary for owner/name. The tree is not
// fetched.
func (p *Pipeline) Summarize(ctx context.Context, owner, name string) (types.RepositoryHandle, string, error) {
	p.stage(StageResolve)
	handle, err := p.source.Resolve(ctx, owner, name)
	if err != nil {
		return types.RepositoryHandle{}, "", err
	}

	p.stage(StageReadme)
	readme, err := p.source.FetchReadme(ctx, handle)
	if err != nil {
		return types.RepositoryHandle{}, "", err
	}

	p.stage(StageGenerate)
	summary, err := p.generator.Summarize(ctx, readme)
	if err != nil {
		return types.RepositoryHandle{}, "", err
	}
	return handle, summary, nil
}

// Inspect runs the tree stages only, without README or model calls.
func (p *Pipeline) Inspect(ctx context.Context, owner, name string) (*types.GuideResult, error) {
	p.stage(StageResolve)
	handle, err := p.source.Resolve(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	p.stage(StageTree)
	entries, err := p.source.FetchTree(ctx, handle)
	if err != nil {
		return nil, err
	}

	files := p.filter.Filter(entries)
	return &types.GuideResult{
		Repository:     handle,
		Files:          files,
		ImportantFiles: p.selector.Select(files),
	}, nil
}
