package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/creational/internal/cli"
	"github.com/aretw0/creational/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the patterns as MCP tools so AI agents can build computers,
order hamburgers, clone documents and read the catalog.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		app := setup(cmd)
		defer app.Close()
		srv := mcp.NewServer(app.Engine, mcp.WithLogger(app.Logger))

		switch transport {
		case "stdio":
			// Stdout carries JSON-RPC.
			log.SetOutput(os.Stderr)
			app.Logger.Info("Starting creational MCP Server (Stdio)")
			if err := srv.ServeStdio(); err != nil {
				exitWithError(cmd, fmt.Errorf("MCP server failed: %w", err), app)
			}
		case "sse":
			ctx, stop := cli.NotifyContext(context.Background())
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				exitWithError(cmd, fmt.Errorf("MCP server failed: %w", err), app)
			}
			app.Logger.Info("MCP Server stopped gracefully", "signal", cli.StopSignal(ctx))
		default:
			exitWithError(cmd, fmt.Errorf("unknown transport %q (supported: stdio, sse)", transport), app)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
