package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"reponavigator/packages/config"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [owner] [name]",
		Short: "Generate a guided developer tour for a repository",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := config.LoadCredentials()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			owner, name, err := readRepository(cmd.InOrStdin(), out, args)
			if err != nil {
				return err
			}

			pipeline, closeFn, err := buildPipeline(cmd.Context(), appConfig, creds)
			if err != nil {
				return err
			}
			defer closeFn()

			pipeline.OnStage = progress(out, "Generating guided developer tour...")
			result, err := pipeline.Run(cmd.Context(), owner, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n===== AI GUIDED TOUR: %s =====\n\n", result.Repository.FullName)
			fmt.Fprintln(out, result.Guide)
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [owner] [name]",
		Short: "Summarize a repository README",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := config.LoadCredentials()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			owner, name, err := readRepository(cmd.InOrStdin(), out, args)
			if err != nil {
				return err
			}

			pipeline, closeFn, err := buildPipeline(cmd.Context(), appConfig, creds)
			if err != nil {
				return err
			}
			defer closeFn()

			pipeline.OnStage = progress(out, "Generating summary...")
			handle, summary, err := pipeline.Summarize(cmd.Context(), owner, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n===== AI SUMMARY: %s =====\n\n", handle.FullName)
			fmt.Fprintln(out, summary)
			return nil
		},
	}
}
