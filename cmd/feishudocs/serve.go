package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/takak2166/feishudocs/internal/action"
	"github.com/takak2166/feishudocs/internal/logger"
	"github.com/takak2166/feishudocs/internal/mcpserver"
)

var serveHTTPAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the actions as MCP tools",
	Long: `Starts an MCP server exposing the six document actions as tools.
Serves over stdio by default; pass --http to serve over HTTP instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &action.Runner{BaseURL: flagBaseURL}
		s := mcpserver.NewServer(runner)

		if serveHTTPAddr != "" {
			logger.Info("Starting MCP server over HTTP", map[string]interface{}{
				"addr": serveHTTPAddr,
			})
			return server.NewStreamableHTTPServer(s).Start(serveHTTPAddr)
		}

		logger.Info("Starting MCP server over stdio")
		return server.ServeStdio(s)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "HTTP listen address (e.g. ':8080'), stdio when empty")
	rootCmd.AddCommand(serveCmd)
}
