package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/internal/relevance"
)

func newSearchCmd() *cobra.Command {
	var (
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the indexed documentation",
		Args:  cobra.MinimumNArgs(1),
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

			if limit < 1 {
				limit = settings.Search.DefaultLimit
			}

			engine := relevance.NewEngine(store, relevance.NewTracker())
			resp, err := engine.Search(cmd.Context(), relevance.SearchRequest{
				Query:    strings.Join(args, " "),
				Category: category,
				Limit:    limit,
				CacheTTL: settings.Search.CacheTTL,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range resp.Warnings {
				fmt.Fprintf(out, "[%s] %s\n", w.Severity, w.Message)
				if w.Alternative != "" {
					fmt.Fprintf(out, "  Instead: %s\n", w.Alternative)
				}
			}
			if len(resp.Results) == 0 {
				fmt.Fprintln(out, "No documents matched")
				return nil
			}
			fmt.Fprintf(out, "%d documents (intent: %s)\n", len(resp.Results), resp.Intent)
			for i, r := range resp.Results {
				fmt.Fprintf(out, "%2d. [%.1f] %s\n    %s (%s)\n",
					i+1, r.Score(), r.Document.Title, r.Document.URL, r.Document.Category)
			}
			for _, s := range resp.Suggestions {
				fmt.Fprintf(out, "Try: %s\n", s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "restrict results to one category")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (default from settings)")
	return cmd
}
