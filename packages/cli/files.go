package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"reponavigator/packages/config"
	"reponavigator/packages/repository"
	"reponavigator/types"
)

func newFilesCmd() *cobra.Command {
	var importantOnly bool

	cmd := &cobra.Command{
		Use:   "files [owner] [name]",
		Short: "List the filtered repository files and mark the important ones",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadGitHubToken()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			owner, name, err := readRepository(cmd.InOrStdin(), out, args)
			if err != nil {
				return err
			}

			result, err := buildInspector(cmd.Context(), appConfig, token).Inspect(cmd.Context(), owner, name)
			if err != nil {
				return err
			}

			renderFiles(out, result, importantOnly)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&importantOnly, "important", "i", false, "Only list important files")
	return cmd
}

func renderFiles(out io.Writer, result *types.GuideResult, importantOnly bool) {
	important := make(map[string]bool, len(result.ImportantFiles))
	for _, f := range result.ImportantFiles {
		important[f] = true
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Path", "Depth", "Important"})
	table.SetAutoWrapText(false)
	for _, f := range result.Files {
		if importantOnly && !important[f] {
			continue
		}
		mark := ""
		if important[f] {
			mark = "yes"
		}
		table.Append([]string{f, fmt.Sprint(repository.PathDepth(f)), mark})
	}
	table.SetFooter([]string{fmt.Sprintf("%d files", len(result.Files)), "", fmt.Sprintf("%d important", len(result.ImportantFiles))})
	table.Render()
}
