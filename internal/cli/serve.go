package cli

import (
	"time"

	"github.com/rpgo/safeharbor/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd runs the HTTP API until interrupted.
func NewServeCmd(cli *CLI) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cli.settings.Server.Addr
			}
			api := server.NewWebAPI(cli.logger, server.Config{
				Addr:            addr,
				ShutdownTimeout: time.Duration(cli.settings.Server.ShutdownTimeout) * time.Second,
				Dependencies: server.Dependencies{
					Constants: cli.constants,
					Store:     cli.store,
				},
			})
			return api.Start(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from settings)")
	return cmd
}
