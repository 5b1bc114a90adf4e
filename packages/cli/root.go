package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"reponavigator/packages/config"
)

var cmdFlags struct {
	configPath string
	verbose    bool
}

// loaded in PersistentPreRunE, shared by every subcommand
var appConfig *config.Config

var Version = "dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reponavigator",
		Short:         "Generate AI onboarding guides for GitHub repositories.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmdFlags.verbose)

			cfg, err := config.LoadConfig(cmdFlags.configPath)
			if err != nil {
				return err
			}
			appConfig = cfg
			slog.Debug("Configuration loaded", "backend", cfg.AI.Backend, "model", cfg.AI.Model)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cmdFlags.configPath, "config", "c", "", "Path to the YAML config file (default "+config.DefaultConfigPath+")")
	root.PersistentFlags().BoolVarP(&cmdFlags.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGuideCmd(), newSummaryCmd(), newFilesCmd(), newServeCmd(), newAppCmd())
	return root
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStdout(), "Error:", err)
		os.Exit(1)
	}
}
