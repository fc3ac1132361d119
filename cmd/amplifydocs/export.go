package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/internal/scraper"
)

func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every indexed document as markdown files",
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

			docs, err := store.ListDocuments(cmd.Context())
			if err != nil {
				return err
			}

			for _, doc := range docs {
				if err := scraper.WriteMarkdownFile(doc, outDir); err != nil {
					return fmt.Errorf("export %s: %w", doc.URL, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d documents to %s\n", len(docs), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "docs-export", "output directory")
	return cmd
}
