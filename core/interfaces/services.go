// ABOUTME: Service interfaces for external collaborators of the core business logic
// ABOUTME: Scraping, markdown tokenizing and progress reporting are injected through these

package interfaces

import (
	"context"
	"iter"

	"sync-bookmarks/core/domain"
)

// Scraper extracts the readable article from a web page.
type Scraper interface {
	Scrape(ctx context.Context, url string) (domain.Article, error)
}

// MarkdownEventSource tokenizes a markdown document into inline events.
// The returned sequence is lazy, finite and may be iterated more than once.
type MarkdownEventSource interface {
	Events(document []byte) iter.Seq[domain.MarkdownEvent]
}

// Progress reports how far a batch operation has come.
type Progress interface {
	Start(message string, total int)
	Increment()
	Finish(message string)
}
