package main

import (
	"context"
	"fmt"

	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the catalog as a JSON API over HTTP, with Prometheus metrics
at /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		app := setup(cmd)
		defer app.Close()

		if port == "" {
			port = app.Config.Server.Port
		}

		ctx, stop := cli.NotifyContext(context.Background())
		defer stop()

		srv := cli.NewHTTPServer(app, ":"+port)
		fmt.Fprintf(cmd.OutOrStdout(), "Starting creational server on %s\n", srv.Addr)

		if err := cli.Serve(ctx, app, srv); err != nil {
			exitWithError(cmd, err, app)
		}
		if sig := cli.StopSignal(ctx); sig != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Server stopped (%v)\n", sig)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default: server.port from the config, 8080)")
}
