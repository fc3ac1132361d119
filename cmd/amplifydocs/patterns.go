package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/internal/mcp"
)

func newPatternsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "patterns <pattern-type>",
		Short: "Find documentation pages matching a common pattern (auth, api, storage, ...)",
		Args:  cobra.ExactArgs(1),
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

			hits, err := store.SearchRanked(cmd.Context(), mcp.PatternQuery(args[0]), limit)
			if err != nil {
				return err
			}
			if len(hits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching documents")
				return nil
			}
			for _, hit := range hits {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", hit.Document.Title, hit.Document.URL)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of results")
	return cmd
}
