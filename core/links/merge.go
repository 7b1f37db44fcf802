// ABOUTME: Source-scoped merge of freshly imported links into the canonical collection
// ABOUTME: Only records of the importing source are ever dropped; other sources are untouched

package links

import "sync-bookmarks/core/domain"

// MergeStats counts what a merge did with the fresh records.
type MergeStats struct {
	// Merged is the number of fresh records appended.
	Merged int
	// AlreadyPresent is the number of fresh records skipped because the URL
	// was already canonical.
	AlreadyPresent int
}

// MergeSource folds fresh, the latest full export of source, into existing.
//
// Records of source whose URL is missing from fresh are dropped. Records of
// any other source are kept as they are. Fresh records are appended in order
// when their URL is not yet present; an existing record for the same URL wins.
// Merging the same fresh input twice changes nothing the second time.
func MergeSource(existing, fresh []domain.SerializedLink, source domain.LinkSource) ([]domain.SerializedLink, MergeStats) {
	freshURLs := make(map[string]struct{}, len(fresh))
	for _, link := range fresh {
		freshURLs[link.URL] = struct{}{}
	}

	merged := make([]domain.SerializedLink, 0, len(existing)+len(fresh))
	present := make(map[string]struct{}, len(existing)+len(fresh))
	for _, link := range existing {
		_, stillExported := freshURLs[link.URL]
		if !stillExported && link.Source == source {
			continue
		}
		merged = append(merged, link.Clone())
		present[link.URL] = struct{}{}
	}

	var stats MergeStats
	for _, link := range fresh {
		if _, ok := present[link.URL]; ok {
			stats.AlreadyPresent++
			continue
		}
		canonical := link.Clone()
		canonical.Source = source
		if canonical.Tags == nil {
			canonical.Tags = []string{}
		}
		merged = append(merged, canonical)
		present[link.URL] = struct{}{}
		stats.Merged++
	}

	return merged, stats
}
