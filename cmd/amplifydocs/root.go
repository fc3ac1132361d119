package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/internal/config"
	"github.com/amplifydocs/amplify-docs-mcp/internal/storage"
)

// Execute is the CLI entry point, extracted for testing.
func Execute(args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "amplifydocs",
		Short:   "Amplify Gen 2 documentation MCP server",
		Long:    "Scrapes the Amplify Gen 2 documentation into a local search index\nand serves it to AI assistants over the Model Context Protocol.",
		Version: fmt.Sprintf("%s (build %s, sqlite %s/%s)", Version, Build, storage.DriverName, storage.BuildMode),
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newServeCmd(),
		newFetchCmd(),
		newSearchCmd(),
		newGetCmd(),
		newCategoriesCmd(),
		newStatsCmd(),
		newPatternsCmd(),
		newExportCmd(),
		newVersionCheckCmd(),
	)
	return rootCmd
}

// loadSettings merges flags, environment, and defaults for a subcommand.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.LoadSettingsWithFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := config.ValidateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// openStore opens the document store configured by settings.
func openStore(settings *config.Settings) (*storage.SQLiteStore, error) {
	return storage.NewSQLiteStore(settings.DBPath)
}
