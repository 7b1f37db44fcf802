// ABOUTME: Vault scanner walks an Obsidian vault and extracts links from every note
// ABOUTME: Non-markdown and unreadable files are skipped without failing the scan

package extract

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
	"sync-bookmarks/core/interfaces"
)

const noteExtension = ".md"

// VaultScanner applies an Extractor to every note under a directory.
type VaultScanner struct {
	extractor *Extractor
	logger    interfaces.Logger
}

// NewVaultScanner creates a scanner.
func NewVaultScanner(extractor *Extractor, logger interfaces.Logger) *VaultScanner {
	return &VaultScanner{
		extractor: extractor,
		logger:    logger,
	}
}

// Scan walks root in lexical order and concatenates the links of every note.
// Links repeated across notes are kept; deduplication happens at merge time.
func (s *VaultScanner) Scan(root string) ([]domain.VaultLink, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &coreerrors.NotFoundError{Resource: "vault directory", ID: root}
		}
		return nil, fmt.Errorf("failed to open vault %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, &coreerrors.ValidationError{Field: "vault", Message: root + " is not a directory"}
	}

	links := make([]domain.VaultLink, 0)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Debug("Skipping unreadable vault entry", map[string]interface{}{
				"path":  path,
				"error": walkErr.Error(),
			})
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !isNote(d) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Debug("Skipping unreadable note", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			return nil
		}

		links = append(links, s.extractor.Extract(content)...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault %s: %w", root, err)
	}

	return links, nil
}

func isNote(d fs.DirEntry) bool {
	return d.Type().IsRegular() && filepath.Ext(d.Name()) == noteExtension
}
