package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			store, err := openStore(settings)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats, err := store.GetStats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Documents: %d\n", stats.TotalDocuments)
			if !stats.LastUpdate.IsZero() {
				fmt.Fprintf(out, "Last update: %s\n", stats.LastUpdate.Format("2006-01-02 15:04:05"))
			}
			for _, c := range types.AllCategories {
				if n := stats.ByCategory[c]; n > 0 {
					fmt.Fprintf(out, "  %-16s %d\n", c, n)
				}
			}

			if run, err := store.LatestScrapeRun(cmd.Context()); err == nil && run != nil {
				fmt.Fprintf(out, "Last scrape: %s (%s, %d pages)\n",
					run.StartedAt.Format("2006-01-02 15:04:05"), run.Status, run.TotalPages)
			}
			return nil
		},
	}
}
