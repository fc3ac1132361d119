package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Print one indexed document as markdown",
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

			doc, err := store.GetDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n\n", doc.Title)
			fmt.Fprintf(out, "URL: %s\nCategory: %s\nLast scraped: %s\n\n",
				doc.URL, doc.Category, doc.LastScraped.Format("2006-01-02 15:04:05"))
			fmt.Fprintln(out, doc.MarkdownContent)
			return nil
		},
	}
}
