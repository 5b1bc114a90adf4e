package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/github"
	"github.com/swinton/go-probot/probot"

	"reponavigator/packages/config"
	"reponavigator/packages/guide"
	"reponavigator/packages/repository"
	"reponavigator/types"
)

// Handlers serves GitHub App webhook events. Every event gets its own
// pipeline built on the installation client.
type Handlers struct {
	cfg       *config.Config
	generator *guide.Generator
}

func New(cfg *config.Config, generator *guide.Generator) *Handlers {
	return &Handlers{cfg: cfg, generator: generator}
}

func (h *Handlers) HandleIssues(ctx *probot.Context) error {
	event := ctx.Payload.(*github.IssuesEvent)
	return h.handleIssueEvent(context.Background(), ctx.GitHub, event)
}

func (h *Handlers) handleIssueEvent(ctx context.Context, gh *github.Client, event *github.IssuesEvent) error {
	issueNumber := event.Issue.GetNumber()
	repoName := event.Repo.GetFullName()
	action := event.GetAction()

	slog.Info("Issue event", "action", action, "issueNumber", issueNumber, "repo", repoName)

	switch action {
	case "labeled":
		return h.handleIssueLabeled(ctx, gh, event)
	default:
		slog.Info("Skipping action", "action", action)
		return nil
	}
}

func (h *Handlers) handleIssueLabeled(ctx context.Context, gh *github.Client, event *github.IssuesEvent) error {
	trigger := h.cfg.Webhook.TriggerLabel
	issueNumber := event.Issue.GetNumber()

	// only the label that was just added counts, so unrelated labels do not
	// produce another comment
	if event.Label != nil {
		if !strings.EqualFold(event.Label.GetName(), trigger) {
			slog.Info("Label is not the trigger label", "label", event.Label.GetName(), "issueNumber", issueNumber)
			return nil
		}
	} else if !hasTriggerLabel(event.Issue.Labels, trigger) {
		return nil
	}

	owner := event.Repo.GetOwner().GetLogin()
	name := event.Repo.GetName()
	if owner == "" || name == "" {
		owner, name, _ = strings.Cut(event.Repo.GetFullName(), "/")
	}

	slog.Info("Generating guide for labeled issue", "repo", owner+"/"+name, "issueNumber", issueNumber)

	pipeline := guide.NewPipeline(repository.NewClient(gh), h.generator, h.cfg)
	result, err := pipeline.Run(ctx, owner, name)

	var body string
	if err != nil {
		slog.Error("Guide generation failed", "repo", owner+"/"+name, "kind", types.KindOf(err), "error", err)
		body = FormatFailure(err)
	} else {
		body = FormatComment(result)
	}

	_, _, cerr := gh.Issues.CreateComment(ctx, owner, name, issueNumber, &github.IssueComment{Body: github.String(body)})
	if cerr != nil {
		slog.Error("Failed to post comment", "repo", owner+"/"+name, "issueNumber", issueNumber, "error", cerr)
		return cerr
	}

	slog.Info("Posted guide comment", "repo", owner+"/"+name, "issueNumber", issueNumber, "ok", err == nil)
	return err
}

// FormatComment renders a guide as an issue comment.
func FormatComment(result *types.GuideResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Repository Guide: %s / %s\n\n", result.Repository.Owner, result.Repository.Name)
	b.WriteString(strings.TrimSpace(result.Guide))
	b.WriteString("\n")

	if len(result.ImportantFiles) > 0 {
		fmt.Fprintf(&b, "\n<details><summary>Important files (%d)</summary>\n\n", len(result.ImportantFiles))
		for _, f := range result.ImportantFiles {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
		b.WriteString("\n</details>\n")
	}
	return b.String()
}

func FormatFailure(err error) string {
	return fmt.Sprintf("Could not generate a repository guide (%s).\n\n```\n%s\n```\n", types.KindOf(err), err.Error())
}

// hasTriggerLabel reports whether labels contain trigger, case-insensitively.
func hasTriggerLabel(labels []github.Label, trigger string) bool {
	for _, label := range labels {
		if label.Name != nil && strings.EqualFold(*label.Name, trigger) {
			return true
		}
	}
	slog.Info("Trigger label not found", "trigger", trigger, "labels", getIssueLabelNames(labels))
	return false
}

func getIssueLabelNames(labels []github.Label) []string {
	var labelNames []string
	for _, label := range labels {
		if label.Name != nil {
			labelNames = append(labelNames, *label.Name)
		}
	}
	return labelNames
}
