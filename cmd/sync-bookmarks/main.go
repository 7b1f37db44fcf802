// ABOUTME: Main entry point for the sync-bookmarks command line tool
// ABOUTME: Builds the cobra command tree and runs it with a signal-aware context

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootOptions holds flags shared by every command
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sync-bookmarks",
		Short: "Collect bookmarks from GoodLinks and Obsidian into one searchable cache",
		Long: "sync-bookmarks merges links from a GoodLinks export and an Obsidian vault into\n" +
			"links.json, caches the readable text of every page and exports the result\n" +
			"in the Raindrop.io CSV format.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output and every failed fetch")

	root.AddCommand(
		newImportCmd(opts),
		newFetchCmd(opts),
		newRaindropCmd(opts),
		newStatsCmd(opts),
		newManCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
