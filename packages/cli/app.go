package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/swinton/go-probot/probot"

	"reponavigator/packages/ai"
	"reponavigator/packages/config"
	"reponavigator/packages/guide"
	"reponavigator/packages/handlers"
)

func newAppCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "app",
		Short: "Run as a GitHub App that answers labeled issues with a guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := config.LoadGeminiKey()
			if err != nil {
				return err
			}
			llm, err := ai.NewClient(cmd.Context(), appConfig.AI, key)
			if err != nil {
				return err
			}
			defer llm.Close()

			loadPrivateKey()
			slog.Info("Starting GitHub App", "appID", os.Getenv("GITHUB_APP_ID"), "triggerLabel", appConfig.Webhook.TriggerLabel)

			h := handlers.New(appConfig, guide.NewGenerator(llm, appConfig.Guide))
			probot.HandleEvent("issues", h.HandleIssues)
			probot.HandleEvent("installation_repositories", h.HandleInstallations)

			// probot parses its own flags from os.Args
			os.Args = os.Args[:1]
			probot.Start()
			return nil
		},
	}
}

// loadPrivateKey copies the key file named by GITHUB_APP_PRIVATE_KEY_PATH into
// GITHUB_APP_PRIVATE_KEY, where probot reads it.
func loadPrivateKey() {
	keyPath := os.Getenv("GITHUB_APP_PRIVATE_KEY_PATH")
	if keyPath == "" {
		return
	}
	keyData, err := os.ReadFile(keyPath)
	if err != nil {
		slog.Error("Failed to read private key", "keyPath", keyPath, "error", err)
		return
	}
	os.Setenv("GITHUB_APP_PRIVATE_KEY", string(keyData))
	slog.Info("Private key loaded from", "keyPath", keyPath)
}
