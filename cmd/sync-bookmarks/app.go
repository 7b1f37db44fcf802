// ABOUTME: Wires configuration, logging, storage and services for a single command run
// ABOUTME: The content cache is opened only for commands that read or write it

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sync-bookmarks/core/extract"
	"sync-bookmarks/core/fetch"
	"sync-bookmarks/core/importer"
	"sync-bookmarks/core/interfaces"
	"sync-bookmarks/core/links"
	"sync-bookmarks/infrastructure/cache/memory"
	"sync-bookmarks/infrastructure/cache/sqlite"
	stdhttp "sync-bookmarks/infrastructure/http/standard"
	stdlogger "sync-bookmarks/infrastructure/logger/standard"
	"sync-bookmarks/infrastructure/markdown"
	"sync-bookmarks/infrastructure/progress"
	"sync-bookmarks/infrastructure/scraper/readability"
	"sync-bookmarks/pkg/config"
)

type app struct {
	cfg     *config.Config
	deps    interfaces.Dependencies
	verbose bool
	out     io.Writer
	closers []func() error
}

func newApp(cmd *cobra.Command, opts *rootOptions, withCache bool) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := stdlogger.NewLogger(stdlogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		logger.SetVerbose()
	}

	a := &app{
		cfg:     cfg,
		verbose: opts.verbose,
		out:     cmd.OutOrStdout(),
		deps: interfaces.Dependencies{
			Links:    links.NewFileStore(cfg.Paths.Links, logger),
			Scraper:  readability.NewScraper(stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout), logger),
			Markdown: markdown.NewGoldmarkSource(),
			Progress: progress.NewBar(cmd.ErrOrStderr()),
			Logger:   logger,
		},
	}

	if withCache {
		if err := a.openCache(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *app) openCache() error {
	switch a.cfg.Cache.Type {
	case "memory":
		a.deps.Cache = memory.NewMemoryCache()
	default:
		client, err := sqlite.NewSQLiteCache(a.cfg.Cache.Path, a.cfg.Cache.Table, a.deps.Logger)
		if err != nil {
			return fmt.Errorf("failed to open cache %s: %w", a.cfg.Cache.Path, err)
		}
		a.deps.Cache = client
		a.closers = append(a.closers, client.Close)
	}
	a.deps.Logger.Debug("Opened content cache", map[string]interface{}{
		"type":  a.cfg.Cache.Type,
		"path":  a.cfg.Cache.Path,
		"table": a.cfg.Cache.Table,
	})
	return nil
}

// Close releases the cache handle
func (a *app) Close() error {
	var first error
	for _, closer := range a.closers {
		if err := closer(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (a *app) goodLinksImporter() *importer.GoodLinksImporter {
	return importer.NewGoodLinksImporter(a.deps.Links, a.deps.Logger)
}

func (a *app) obsidianImporter() *importer.ObsidianImporter {
	scanner := extract.NewVaultScanner(extract.NewExtractor(a.deps.Markdown), a.deps.Logger)
	return importer.NewObsidianImporter(a.deps.Links, scanner, a.deps.Logger)
}

func (a *app) fetchPipeline() *fetch.Pipeline {
	return fetch.NewPipeline(fetch.Config{
		BannedHosts:   a.cfg.Fetch.BannedHosts,
		Verbose:       a.verbose,
		RatePerSecond: a.cfg.Fetch.RatePerSecond,
	}, a.deps.Cache, a.deps.Scraper, a.deps.Progress, a.deps.Logger)
}

// printResult writes the found line and the summary of an import
func (a *app) printResult(label string, result importer.Result) {
	fmt.Fprintf(a.out, "Found %d %s links\n", result.Found, label)
	fmt.Fprintln(a.out, result.Summary())
}
