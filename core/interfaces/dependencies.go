// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Links persists the canonical link collection
	Links LinkStorage

	// Cache stores extracted article content
	Cache ContentCache

	// Scraper extracts articles from web pages
	Scraper Scraper

	// Markdown tokenizes vault notes
	Markdown MarkdownEventSource

	// Progress reports fetch progress
	Progress Progress

	// Logger provides structured logging
	Logger Logger
}
