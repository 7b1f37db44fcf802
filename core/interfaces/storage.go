// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines the contract for the canonical link collection

package interfaces

import "sync-bookmarks/core/domain"

// LinkStorage loads and persists the full canonical link collection.
type LinkStorage interface {
	// Load returns the stored collection. A store that was never written
	// yields an empty collection rather than an error.
	Load() ([]domain.SerializedLink, error)

	// Save overwrites the stored collection.
	Save(links []domain.SerializedLink) error
}
