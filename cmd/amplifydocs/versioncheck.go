package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amplifydocs/amplify-docs-mcp/internal/versioncheck"
)

func newVersionCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version-check",
		Short: "Check Amplify Gen 2 and Next.js version compatibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			report := versioncheck.New().Run(cmd.Context(), cwd)

			out := cmd.OutOrStdout()
			if report.AmplifyBackend != "" {
				fmt.Fprintf(out, "Latest @aws-amplify/backend: %s\n", report.AmplifyBackend)
			}
			if report.NextLatest != "" {
				fmt.Fprintf(out, "Latest Next.js: %s\n", report.NextLatest)
			}
			if report.NextLocal != "" {
				fmt.Fprintf(out, "Local Next.js: %s\n", report.NextLocal)
			}
			for _, note := range report.Notes {
				fmt.Fprintf(out, "- %s\n", note)
			}

			fmt.Fprintf(out, "\nAmplify Gen 2 supports Next.js %d.x and later (App Router and Pages Router).\n", versioncheck.MinNextMajor)
			fmt.Fprintln(out, "New project: npx create-amplify@latest --template nextjs")
			fmt.Fprintln(out, "Existing Next.js project: npx create-amplify@latest && npm install aws-amplify@latest")
			return nil
		},
	}
}
