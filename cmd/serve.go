package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/workspace-output/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the workspace operations",
	Long: `Start a Model Context Protocol (MCP) server that exposes the workspace
operations as tools. The window manager is connected on the first call.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  workspace-output serve
  workspace-output serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	srv := server.New(connect, engineOptions(cmd))
	return srv.Serve(server.Config{
		Transport: transport,
		Port:      port,
	})
}
