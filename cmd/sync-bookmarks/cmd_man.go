package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages for every command",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			header := &doc.GenManHeader{
				Title:   "SYNC-BOOKMARKS",
				Section: "1",
				Source:  "sync-bookmarks " + version,
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf("failed to generate man pages: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote man pages to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", "output directory")
	return cmd
}
