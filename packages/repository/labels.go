package repository

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/go-github/github"

	"reponavigator/types"
)

type issuesLabelService interface {
	GetLabel(ctx context.Context, owner string, repo string, name string) (*github.Label, *github.Response, error)
	CreateLabel(ctx context.Context, owner string, repo string, label *github.Label) (*github.Label, *github.Response, error)
}

// TriggerLabel describes the label that asks the GitHub App for a guide.
type TriggerLabel struct {
	Name        string
	Color       string
	Description string
}

// EnsureTriggerLabel creates the trigger label on owner/repo unless it is
// already there.
func EnsureTriggerLabel(ctx context.Context, issues issuesLabelService, owner, repo string, label TriggerLabel) error {
	full := owner + "/" + repo

	_, resp, err := issues.GetLabel(ctx, owner, repo, label.Name)
	if err == nil {
		slog.Info("Label already exists", "label", label.Name, "repo", full)
		return nil
	}
	if statusOf(resp, err) != http.StatusNotFound {
		slog.Error("Error checking label", "label", label.Name, "repo", full, "error", err)
		return classify("get label", types.ErrProvider, resp, err)
	}

	_, resp, err = issues.CreateLabel(ctx, owner, repo, &github.Label{
		Name:        github.String(label.Name),
		Color:       github.String(label.Color),
		Description: github.String(label.Description),
	})
	if err != nil {
		slog.Error("Failed to create label", "label", label.Name, "repo", full, "error", err)
		return classify("create label", types.ErrProvider, resp, err)
	}

	slog.Info("Created label", "label", label.Name, "repo", full)
	return nil
}
