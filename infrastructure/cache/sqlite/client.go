// ABOUTME: SQLite-backed content cache for extracted article text
// ABOUTME: Entries are keyed by URL, written once and survive application restarts

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
	"sync-bookmarks/core/interfaces"
)

const (
	// DefaultFilePath is used when no cache file is configured
	DefaultFilePath = "cache.db"
	// DefaultTable is the content table name
	DefaultTable = "cache"
	// MemoryPath opens a cache that lives only as long as the process
	MemoryPath = ":memory:"
)

// Client implements interfaces.ContentCache using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	table    string
	queries  *ContentQueries
	logger   interfaces.Logger
}

// NewSQLiteCache opens (creating when needed) the cache at filePath and
// ensures the content table exists
func NewSQLiteCache(filePath, table string, logger interfaces.Logger) (*Client, error) {
	if filePath == "" {
		filePath = DefaultFilePath
	}
	if table == "" {
		table = DefaultTable
	}

	queries, err := NewContentQueries(table)
	if err != nil {
		return nil, err
	}

	// Open database connection
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// One connection serializes writers and keeps a :memory: database alive
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		table:    table,
		queries:  queries,
		logger:   logger,
	}

	// Initialize schema
	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the content table if it doesn't exist
func (c *Client) initSchema() error {
	_, err := c.db.Exec(c.queries.CreateTable())
	return err
}

// Query retrieves the entry for url, or nil when none exists
func (c *Client) Query(ctx context.Context, url string) (*domain.CachedLink, error) {
	if err := ValidateURL(url); err != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: err.Error()}
	}

	query, params := c.queries.QueryByURL(url)
	link, err := c.scanLink(c.db.QueryRowContext(ctx, query, params...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// QueryAll returns every entry in insertion order
func (c *Client) QueryAll(ctx context.Context) ([]domain.CachedLink, error) {
	query, params := c.queries.QueryAll()
	return c.queryList(ctx, query, params)
}

// QueryUnarchived returns entries that have not been archived, in insertion order
func (c *Client) QueryUnarchived(ctx context.Context) ([]domain.CachedLink, error) {
	query, params := c.queries.QueryUnarchived()
	return c.queryList(ctx, query, params)
}

// Insert stores a new entry; an existing URL yields *errors.DuplicateKeyError
func (c *Client) Insert(ctx context.Context, link domain.CachedLink) error {
	if err := ValidateURL(link.URL); err != nil {
		return &coreerrors.ValidationError{Field: "url", Message: err.Error()}
	}

	tags := link.Tags
	if tags == nil {
		tags = []string{}
	}
	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query, params := c.queries.Insert(link.URL, link.Title, link.TextContent, link.Source, string(encodedTags))
	if _, err := c.db.ExecContext(ctx, query, params...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return &coreerrors.DuplicateKeyError{Table: c.table, Key: link.URL}
		}
		return fmt.Errorf("failed to insert %s: %w", link.URL, err)
	}

	if c.logger != nil {
		c.logger.Debug("Cached link content", map[string]interface{}{
			"url":    link.URL,
			"source": link.Source.String(),
		})
	}
	return nil
}

func (c *Client) queryList(ctx context.Context, query string, params []interface{}) ([]domain.CachedLink, error) {
	rows, err := c.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.table, err)
	}
	defer rows.Close()

	links := make([]domain.CachedLink, 0)
	for rows.Next() {
		link, err := c.scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.table, err)
	}
	return links, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (c *Client) scanLink(row rowScanner) (domain.CachedLink, error) {
	var (
		link       domain.CachedLink
		title      sql.NullString
		content    sql.NullString
		source     sql.NullString
		tags       sql.NullString
		archivedAt sql.NullTime
	)

	if err := row.Scan(&link.URL, &title, &source, &tags, &content, &archivedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return link, err
		}
		return link, fmt.Errorf("failed to scan %s row: %w", c.table, err)
	}

	link.Title = title.String
	link.TextContent = content.String

	parsed, err := domain.ParseLinkSource(source.String)
	if err != nil {
		return link, &coreerrors.CorruptRecordError{Table: c.table, Key: link.URL, Field: "source", Err: err}
	}
	link.Source = parsed

	link.Tags = []string{}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &link.Tags); err != nil {
			return link, &coreerrors.CorruptRecordError{Table: c.table, Key: link.URL, Field: "tags", Err: err}
		}
		if link.Tags == nil {
			link.Tags = []string{}
		}
	}

	if archivedAt.Valid {
		at := archivedAt.Time
		link.ArchivedAt = &at
	}
	return link, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Stats returns cache statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// Count total entries
	var count int
	if err := c.db.QueryRow(c.queries.Count(false)).Scan(&count); err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	// Count archived entries
	var archived int
	if err := c.db.QueryRow(c.queries.Count(true)).Scan(&archived); err != nil {
		return nil, err
	}
	stats["archived_entries"] = archived

	// Database file size
	var pageCount, pageSize int
	err := c.db.QueryRow("PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRow("PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["backend"] = "sqlite"
	stats["file_path"] = c.filePath
	stats["table"] = c.table

	return stats, nil
}

var (
	_ interfaces.ContentCache = (*Client)(nil)
	_ interfaces.CacheStats   = (*Client)(nil)
)
