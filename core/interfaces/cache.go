// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"

	"sync-bookmarks/core/domain"
)

// ContentCache is the durable URL-keyed store of extracted article content.
// Implementations can be SQLite (file or memory backed) or purely in-process.
//
// Example usage:
//
//	cached, err := cache.Query(ctx, "https://example.com/post")
//	if err != nil {
//		return err
//	}
//	if cached == nil {
//		err = cache.Insert(ctx, domain.NewCachedLink(link, article))
//	}
type ContentCache interface {
	// Query returns the entry for url, or nil when no entry exists.
	Query(ctx context.Context, url string) (*domain.CachedLink, error)

	// QueryAll returns every entry in insertion order.
	QueryAll(ctx context.Context) ([]domain.CachedLink, error)

	// QueryUnarchived returns every entry without an archive mark, in insertion order.
	QueryUnarchived(ctx context.Context) ([]domain.CachedLink, error)

	// Insert stores a new entry. It fails with a *errors.DuplicateKeyError when
	// the URL is already present and leaves the store unchanged.
	Insert(ctx context.Context, link domain.CachedLink) error
}

// CacheStats is implemented by caches that can describe their contents.
type CacheStats interface {
	Stats() (map[string]interface{}, error)
}
