// ABOUTME: Raindrop.io CSV export of the content cache
// ABOUTME: One row per cached link in insertion order, tags joined with commas

package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"sync-bookmarks/core/interfaces"
)

// RaindropHeader is the first row of every export.
var RaindropHeader = []string{"folder", "url", "title", "tags"}

// RaindropExporter writes the cache in the Raindrop.io import format.
type RaindropExporter struct {
	cache  interfaces.ContentCache
	logger interfaces.Logger
}

// NewRaindropExporter creates an exporter reading from cache.
func NewRaindropExporter(cache interfaces.ContentCache, logger interfaces.Logger) *RaindropExporter {
	return &RaindropExporter{
		cache:  cache,
		logger: logger,
	}
}

// Export writes the header and one row per cached link to w and returns the
// number of rows written, header excluded. The folder column holds the source.
func (e *RaindropExporter) Export(ctx context.Context, w io.Writer) (int, error) {
	links, err := e.cache.QueryAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(RaindropHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for _, link := range links {
		record := []string{
			link.Source.String(),
			link.URL,
			link.Title,
			strings.Join(link.Tags, ","),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", link.URL, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}

	e.logger.Debug("Exported Raindrop CSV", map[string]interface{}{"rows": len(links)})
	return len(links), nil
}
