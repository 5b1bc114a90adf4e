package repository

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"reponavigator/types"
)

// FetchReadme returns the repository README decoded as UTF-8 text.
func (c *Client) FetchReadme(ctx context.Context, handle types.RepositoryHandle) (string, error) {
	slog.Debug("Fetching README", "repo", handle.FullName)

	content, resp, err := c.repos.GetReadme(ctx, handle.Owner, handle.Name, nil)
	if err != nil {
		status := statusOf(resp, err)
		if status == http.StatusNotFound {
			return "", types.NewError(types.ErrReadmeNotFound, "fetch readme", status, err)
		}
		return "", types.NewError(types.ErrProvider, "fetch readme", status, err)
	}

	text, err := content.GetContent()
	if err != nil {
		return "", types.NewError(types.ErrProvider, "decode readme", 0, err)
	}
	if !utf8.ValidString(text) {
		slog.Warn("README is not valid UTF-8, replacing invalid bytes", "repo", handle.FullName)
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	slog.Info("README fetched", "repo", handle.FullName, "path", content.GetPath(), "chars", utf8.RuneCountInString(text))
	return text, nil
}

// FetchTree lists every entry of the default branch tree. No depth limit is
// applied here; TreeFilter does that.
func (c *Client) FetchTree(ctx context.Context, handle types.RepositoryHandle) ([]types.TreeEntry, error) {
	branch := handle.DefaultBranch
	if branch == "" {
		return nil, types.NewError(types.ErrTreeFetchFailed, "fetch tree", 0, errors.New("repository has no default branch"))
	}

	slog.Debug("Fetching repository tree", "repo", handle.FullName, "branch", branch)

	tree, resp, err := c.git.GetTree(ctx, handle.Owner, handle.Name, branch, true)
	if err != nil {
		return nil, types.NewError(types.ErrTreeFetchFailed, "fetch tree", statusOf(resp, err), err)
	}

	entries := make([]types.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, types.TreeEntry{
			Path: e.GetPath(),
			Type: types.EntryType(e.GetType()),
		})
	}

	slog.Info("Repository tree fetched", "repo", handle.FullName, "branch", branch, "entries", len(entries))
	return entries, nil
}
