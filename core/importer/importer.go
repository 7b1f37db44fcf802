// Package importer turns source-specific exports into canonical links and
// merges them into the link store with source-scoped replacement.
package importer

import (
	"fmt"

	"sync-bookmarks/core/domain"
	"sync-bookmarks/core/interfaces"
	"sync-bookmarks/core/links"
)

// Result reports what one import run did. The counters are informational.
type Result struct {
	Source domain.LinkSource
	// Found is the number of records read from the source.
	Found int
	// SkippedIneligible counts records that may not be imported (unread items).
	SkippedIneligible int
	// SkippedExisting counts records whose URL was already canonical.
	SkippedExisting int
	// Merged counts records newly added to the link store.
	Merged int
}

// Summary renders the result as a one-line human readable message.
func (r Result) Summary() string {
	switch r.Source {
	case domain.SourceReadLater:
		return fmt.Sprintf("Serialized %d GoodLinks links; skipped %d unread links and %d links already serialized",
			r.Merged, r.SkippedIneligible, r.SkippedExisting)
	case domain.SourceVault:
		return fmt.Sprintf("Serialized %d Obsidian links; %d links already serialized",
			r.Merged, r.SkippedExisting)
	default:
		return fmt.Sprintf("Serialized %d links; %d links already serialized", r.Merged, r.SkippedExisting)
	}
}

func (r Result) fields() map[string]interface{} {
	return map[string]interface{}{
		"source":             r.Source.String(),
		"found":              r.Found,
		"skipped_ineligible": r.SkippedIneligible,
		"skipped_existing":   r.SkippedExisting,
		"merged":             r.Merged,
	}
}

// mergeInto loads the link store, merges fresh under source and saves the result.
func mergeInto(store interfaces.LinkStorage, fresh []domain.SerializedLink, source domain.LinkSource) (links.MergeStats, error) {
	existing, err := store.Load()
	if err != nil {
		return links.MergeStats{}, fmt.Errorf("failed to load link store: %w", err)
	}

	merged, stats := links.MergeSource(existing, fresh, source)

	if err := store.Save(merged); err != nil {
		return links.MergeStats{}, fmt.Errorf("failed to save link store: %w", err)
	}
	return stats, nil
}
