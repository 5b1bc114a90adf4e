package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reponavigator/packages/config"
	"reponavigator/packages/web"
)

func newServeCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser form for generating guides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := config.LoadCredentials()
			if err != nil {
				return err
			}
			pipeline, closeFn, err := buildPipeline(cmd.Context(), appConfig, creds)
			if err != nil {
				return err
			}
			defer closeFn()

			server, err := web.NewServer(appConfig.Server, pipeline)
			if err != nil {
				return err
			}

			if address == "" {
				address = appConfig.Server.Address
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(ctx, address)
		},
	}
	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (overrides server.address)")
	return cmd
}
