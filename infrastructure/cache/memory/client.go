// ABOUTME: In-memory content cache built on go-cache for tests and dry runs
// ABOUTME: Entries never expire and keep their insertion order for listings

package memory

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
	"sync-bookmarks/core/interfaces"
)

// MemoryCache implements interfaces.ContentCache using in-memory storage
type MemoryCache struct {
	items *gocache.Cache

	mu    sync.RWMutex
	order []string
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Query retrieves the entry for url, or nil when none exists
func (c *MemoryCache) Query(ctx context.Context, url string) (*domain.CachedLink, error) {
	// Check if context is cancelled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(url)
	if !ok {
		return nil, nil
	}

	// Return a copy of the entry
	link := value.(domain.CachedLink).Clone()
	return &link, nil
}

// QueryAll returns every entry in insertion order
func (c *MemoryCache) QueryAll(ctx context.Context) ([]domain.CachedLink, error) {
	return c.list(ctx, false)
}

// QueryUnarchived returns entries that have not been archived, in insertion order
func (c *MemoryCache) QueryUnarchived(ctx context.Context) ([]domain.CachedLink, error) {
	return c.list(ctx, true)
}

// Insert stores a new entry; an existing URL yields *errors.DuplicateKeyError
func (c *MemoryCache) Insert(ctx context.Context, link domain.CachedLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if link.URL == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "url cannot be empty"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored := link.Clone()
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	if err := c.items.Add(link.URL, stored, gocache.NoExpiration); err != nil {
		return &coreerrors.DuplicateKeyError{Table: "memory", Key: link.URL}
	}
	c.order = append(c.order, link.URL)
	return nil
}

// Len returns the number of cached entries
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}

// Stats returns entry counts for the cache
func (c *MemoryCache) Stats() (map[string]interface{}, error) {
	links, err := c.list(context.Background(), false)
	if err != nil {
		return nil, err
	}

	archived := 0
	for _, link := range links {
		if link.IsArchived() {
			archived++
		}
	}

	return map[string]interface{}{
		"total_entries":    len(links),
		"archived_entries": archived,
		"backend":          "memory",
	}, nil
}

func (c *MemoryCache) list(ctx context.Context, unarchivedOnly bool) ([]domain.CachedLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	links := make([]domain.CachedLink, 0, len(c.order))
	for _, url := range c.order {
		value, ok := c.items.Get(url)
		if !ok {
			continue
		}
		link := value.(domain.CachedLink)
		if unarchivedOnly && link.IsArchived() {
			continue
		}
		links = append(links, link.Clone())
	}
	return links, nil
}

var (
	_ interfaces.ContentCache = (*MemoryCache)(nil)
	_ interfaces.CacheStats   = (*MemoryCache)(nil)
)
