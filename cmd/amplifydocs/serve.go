package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation index over MCP on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			// stdout carries the protocol; all logging goes to stderr.
			log.SetOutput(os.Stderr)

			server, err := mcp.NewServer(settings)
			if err != nil {
				return err
			}
			return server.Serve(cmd.Context())
		},
	}
}
