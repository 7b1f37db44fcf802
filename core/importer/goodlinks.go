// ABOUTME: GoodLinks importer reads a read-later JSON export into the link store
// ABOUTME: Only items that have been read are imported

package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
	"sync-bookmarks/core/interfaces"
)

// LoadGoodLinksExport reads a GoodLinks JSON export. A missing or malformed
// file is an error.
func LoadGoodLinksExport(path string) ([]domain.ReadLaterLink, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &coreerrors.NotFoundError{Resource: "GoodLinks export", ID: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []domain.ReadLaterLink
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// GoodLinksImporter merges read-later records under domain.SourceReadLater.
type GoodLinksImporter struct {
	store  interfaces.LinkStorage
	logger interfaces.Logger
}

// NewGoodLinksImporter creates an importer writing to store.
func NewGoodLinksImporter(store interfaces.LinkStorage, logger interfaces.Logger) *GoodLinksImporter {
	return &GoodLinksImporter{
		store:  store,
		logger: logger,
	}
}

// ImportFile loads the export at path and imports it.
func (i *GoodLinksImporter) ImportFile(path string) (Result, error) {
	records, err := LoadGoodLinksExport(path)
	if err != nil {
		return Result{Source: domain.SourceReadLater}, err
	}
	return i.Import(records)
}

// Import merges the read records of a full export into the link store.
func (i *GoodLinksImporter) Import(records []domain.ReadLaterLink) (Result, error) {
	result := Result{Source: domain.SourceReadLater, Found: len(records)}
	i.logger.Info("Found GoodLinks links", map[string]interface{}{"count": len(records)})

	fresh := make([]domain.SerializedLink, 0, len(records))
	for _, record := range records {
		if !record.IsRead() {
			result.SkippedIneligible++
			continue
		}
		fresh = append(fresh, record.Canonical())
	}

	stats, err := mergeInto(i.store, fresh, domain.SourceReadLater)
	if err != nil {
		return result, err
	}
	result.Merged = stats.Merged
	result.SkippedExisting = stats.AlreadyPresent

	i.logger.Info("Imported GoodLinks links", result.fields())
	return result, nil
}
