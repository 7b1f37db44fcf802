// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, HTTP communication, parsing and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/sqlite: Durable content cache on SQLite
// - cache/memory: In-process content cache on go-cache
// - http/standard: Standard library HTTP client
// - scraper/readability: Article extraction with go-readability
// - markdown: Goldmark-based markdown event source
// - progress: Terminal progress bar
// - logger/standard: logrus-backed structured logger
//
// # Content Cache
//
//	cache, err := sqlite.NewSQLiteCache("cache.db", "cache", logger)
//	if err != nil {
//	    return err
//	}
//	defer cache.Close()
//
//	entry, err := cache.Query(ctx, "https://example.com/post")
//
// # Scraper
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	scraper := readability.NewScraper(client, logger)
//	article, err := scraper.Scrape(ctx, "https://example.com/post")
//
// # Logger
//
//	logger, err := standard.NewLogger(standard.Options{Level: "info", Format: "json"})
//	logger.Info("Merged links", map[string]interface{}{
//	    "source": "Vault",
//	    "merged": 12,
//	})
package infrastructure
