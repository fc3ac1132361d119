package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/internal/scraper"
)

func newFetchCmd() *cobra.Command {
	var (
		force       bool
		markdownDir string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Crawl the documentation site and index every page",
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

			sc := scraper.New(store,
				scraper.WithRequestsPerSecond(settings.Scrape.RequestsPerSecond),
				scraper.WithConcurrency(settings.Scrape.Concurrency),
				scraper.WithMaxDepth(settings.Scrape.MaxDepth),
				scraper.WithFetcher(scraper.NewFetcher(scraper.WithTimeout(settings.Scrape.FetchTimeout))),
				scraper.WithLogger(log.New(os.Stderr, "[fetch] ", log.LstdFlags)),
			)

			if markdownDir == "" {
				markdownDir = settings.Scrape.MarkdownDir
			}

			result, err := sc.Run(cmd.Context(), scraper.RunOptions{
				BaseURL:      settings.Scrape.BaseURL,
				ForceRefresh: force,
				MarkdownDir:  markdownDir,
			})
			if err != nil {
				return err
			}

			if result.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "Index already populated; use --force to re-scrape")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Discovered %d pages: %d scraped, %d errors (run %d)\n",
				result.Discovered, result.Scraped, result.Errors, result.RunID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "re-scrape pages that are already indexed")
	cmd.Flags().StringVar(&markdownDir, "save-markdown", "", "also export scraped pages as markdown files under this directory")
	return cmd
}
