// ABOUTME: Obsidian importer extracts links from every note of a vault into the link store
// ABOUTME: Vault links carry no tags

package importer

import (
	"sync-bookmarks/core/domain"
	"sync-bookmarks/core/extract"
	"sync-bookmarks/core/interfaces"
)

// ObsidianImporter merges vault links under domain.SourceVault.
type ObsidianImporter struct {
	store   interfaces.LinkStorage
	scanner *extract.VaultScanner
	logger  interfaces.Logger
}

// NewObsidianImporter creates an importer scanning notes with scanner.
func NewObsidianImporter(store interfaces.LinkStorage, scanner *extract.VaultScanner, logger interfaces.Logger) *ObsidianImporter {
	return &ObsidianImporter{
		store:   store,
		scanner: scanner,
		logger:  logger,
	}
}

// ImportVault scans the vault at root and imports every link found.
func (i *ObsidianImporter) ImportVault(root string) (Result, error) {
	found, err := i.scanner.Scan(root)
	if err != nil {
		return Result{Source: domain.SourceVault}, err
	}
	return i.Import(found)
}

// Import merges the links of a full vault scan into the link store.
func (i *ObsidianImporter) Import(found []domain.VaultLink) (Result, error) {
	result := Result{Source: domain.SourceVault, Found: len(found)}
	i.logger.Info("Found Obsidian links", map[string]interface{}{"count": len(found)})

	fresh := make([]domain.SerializedLink, 0, len(found))
	for _, link := range found {
		fresh = append(fresh, link.Canonical())
	}

	stats, err := mergeInto(i.store, fresh, domain.SourceVault)
	if err != nil {
		return result, err
	}
	result.Merged = stats.Merged
	result.SkippedExisting = stats.AlreadyPresent

	i.logger.Info("Imported Obsidian links", result.fields())
	return result, nil
}
