package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"

	"reponavigator/types"
)

type repositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	GetReadme(ctx context.Context, owner, repo string, opt *github.RepositoryContentGetOptions) (*github.RepositoryContent, *github.Response, error)
}

type gitService interface {
	GetTree(ctx context.Context, owner string, repo string, sha string, recursive bool) (*github.Tree, *github.Response, error)
}

// Client resolves repositories and reads their README and tree through the
// GitHub REST API. It holds no per-repository state and is safe to share.
type Client struct {
	repos repositoriesService
	git   gitService
}

// NewClient wraps an existing go-github client, e.g. the installation client
// handed to webhook handlers.
func NewClient(gh *github.Client) *Client {
	return &Client{repos: gh.Repositories, git: gh.Git}
}

// NewGitHubClient builds a go-github client that presents token on every
// request.
func NewGitHubClient(ctx context.Context, token string) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

// Resolve maps owner/name to a repository handle.
func (c *Client) Resolve(ctx context.Context, owner, name string) (types.RepositoryHandle, error) {
	owner = strings.TrimSpace(owner)
	name = strings.TrimSpace(name)
	if owner == "" || name == "" {
		return types.RepositoryHandle{}, types.NewError(types.ErrInvalidRepository, "resolve repository", 0, nil)
	}

	slog.Debug("Resolving repository", "owner", owner, "name", name)

	repo, resp, err := c.repos.Get(ctx, owner, name)
	if err != nil {
		return types.RepositoryHandle{}, classify("resolve repository", types.ErrRepositoryNotFound, resp, err)
	}

	handle := types.RepositoryHandle{
		Owner:         owner,
		Name:          name,
		FullName:      repo.GetFullName(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
	if handle.FullName == "" {
		handle.FullName = owner + "/" + name
	}

	slog.Info("Repository resolved", "repo", handle.FullName, "defaultBranch", handle.DefaultBranch)
	return handle, nil
}
