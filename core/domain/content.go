// ABOUTME: Content cache domain models for extracted article content
// ABOUTME: CachedLink is the durable record, Article is what a scraper returns

package domain

import "time"

// Article is the extracted readable content of a page.
type Article struct {
	Title       string
	TextContent string
}

// CachedLink is a content cache entry. It is unique by URL and never updated.
type CachedLink struct {
	URL         string
	Title       string
	Source      LinkSource
	Tags        []string
	TextContent string

	// ArchivedAt is reserved; the fetch pipeline never sets it.
	ArchivedAt *time.Time
}

// NewCachedLink builds a cache entry from a canonical link and its article.
func NewCachedLink(link SerializedLink, article Article) CachedLink {
	return CachedLink{
		URL:         link.URL,
		Title:       article.Title,
		Source:      link.Source,
		Tags:        cloneTags(link.Tags),
		TextContent: article.TextContent,
	}
}

// Article returns the cached article content.
func (c CachedLink) Article() Article {
	return Article{Title: c.Title, TextContent: c.TextContent}
}

// Clone returns a copy that shares no slices or pointers with c.
func (c CachedLink) Clone() CachedLink {
	c.Tags = cloneTags(c.Tags)
	if c.ArchivedAt != nil {
		at := *c.ArchivedAt
		c.ArchivedAt = &at
	}
	return c
}

// IsArchived reports whether the entry has been archived.
func (c CachedLink) IsArchived() bool {
	return c.ArchivedAt != nil
}
