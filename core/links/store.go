// ABOUTME: JSON file store for the canonical link collection
// ABOUTME: A missing file reads as an empty collection; writes replace the file atomically

package links

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sync-bookmarks/core/domain"
	"sync-bookmarks/core/interfaces"
)

// DefaultPath is where the link collection lives when no path is configured.
const DefaultPath = "links.json"

// FileStore implements interfaces.LinkStorage on top of a pretty-printed JSON file.
type FileStore struct {
	path   string
	logger interfaces.Logger
}

// NewFileStore creates a store for the file at path.
func NewFileStore(path string, logger interfaces.Logger) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the whole collection.
func (s *FileStore) Load() ([]domain.SerializedLink, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("Link store not found, starting empty", map[string]interface{}{
			"path": s.path,
		})
		return []domain.SerializedLink{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var links []domain.SerializedLink
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	for i := range links {
		if links[i].Tags == nil {
			links[i].Tags = []string{}
		}
	}
	if links == nil {
		links = []domain.SerializedLink{}
	}

	return links, nil
}

// Save overwrites the collection. The new content is written to a temporary
// file next to the target and renamed over it.
func (s *FileStore) Save(links []domain.SerializedLink) error {
	out := make([]domain.SerializedLink, len(links))
	for i, link := range links {
		out[i] = link.Clone()
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode links for %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".links-*.json")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	s.logger.Debug("Saved link store", map[string]interface{}{
		"path":  s.path,
		"links": len(out),
	})
	return nil
}
