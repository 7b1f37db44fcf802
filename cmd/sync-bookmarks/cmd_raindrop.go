package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sync-bookmarks/core/export"
)

func newRaindropCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "raindrop",
		Short: "Export the content cache as a Raindrop.io import CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			exporter := export.NewRaindropExporter(a.deps.Cache, a.deps.Logger)
			if output == "" {
				_, err := exporter.Export(cmd.Context(), a.out)
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			rows, err := exporter.Export(cmd.Context(), file)
			if closeErr := file.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("failed to write %s: %w", output, closeErr)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Exported %d links to %s\n", rows, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the CSV to a file instead of stdout")
	return cmd
}
