// Package core contains the business logic of sync-bookmarks.
// It is independent of storage, network and terminal concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Canonical, source-specific and cached link models
// - extract: Markdown link extraction and vault scanning
// - links: The JSON link store and source-scoped merging
// - importer: GoodLinks and Obsidian importers
// - fetch: Article fetching into the content cache
// - export: Raindrop.io CSV export
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, scraper, logger)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - A link's URL is its identity; stored records are never rewritten in place
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Links:    links.NewFileStore("links.json", logger),
//	    Cache:    cache,    // implements interfaces.ContentCache
//	    Scraper:  scraper,  // implements interfaces.Scraper
//	    Progress: progress, // implements interfaces.Progress
//	    Logger:   logger,   // implements interfaces.Logger
//	}
//
//	result, err := importer.NewGoodLinksImporter(deps.Links, deps.Logger).
//	    ImportFile("goodlinks.json")
//
//	pipeline := fetch.NewPipeline(fetch.Config{BannedHosts: hosts},
//	    deps.Cache, deps.Scraper, deps.Progress, deps.Logger)
//	summary, err := pipeline.RunStore(ctx, deps.Links)
package core
