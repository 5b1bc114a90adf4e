package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/go-github/github"
	"github.com/swinton/go-probot/probot"

	"reponavigator/packages/repository"
)

func (h *Handlers) HandleInstallations(ctx *probot.Context) error {
	event := ctx.Payload.(*github.InstallationRepositoriesEvent)
	return h.handleInstallationEvent(context.Background(), ctx.GitHub, event)
}

func (h *Handlers) handleInstallationEvent(ctx context.Context, gh *github.Client, event *github.InstallationRepositoriesEvent) error {
	action := event.GetAction()
	slog.Info("Installation Action:", "action", action)

	switch action {
	case "added":
		return h.handleRepositoriesAdded(ctx, gh, event.RepositoriesAdded)
	case "removed":
		for _, repo := range event.RepositoriesRemoved {
			slog.Info("Repository removed", "fullName", repo.GetFullName())
		}
	}
	return nil
}

func (h *Handlers) handleRepositoriesAdded(ctx context.Context, gh *github.Client, repos []*github.Repository) error {
	label := repository.TriggerLabel{
		Name:        h.cfg.Webhook.TriggerLabel,
		Color:       h.cfg.Webhook.LabelColor,
		Description: h.cfg.Webhook.LabelDescription,
	}

	for _, repo := range repos {
		fullName := repo.GetFullName()
		owner, name, ok := strings.Cut(fullName, "/")
		if !ok || owner == "" || name == "" {
			slog.Error("Invalid repository full name", "fullName", fullName)
			continue
		}

		// one failing repository does not stop the rest of the batch
		if err := repository.EnsureTriggerLabel(ctx, gh.Issues, owner, name, label); err != nil {
			slog.Error("Failed to add trigger label", "repo", fullName, "error", err)
			continue
		}
	}
	return nil
}
