package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
	"sync-bookmarks/core/links"
)

const goodLinksExport = `[
  {"url": "https://x.com", "readAt": 123, "title": "X", "tags": ["t"]},
  {"url": "https://y.com", "readAt": null, "title": "Y", "tags": []}
]`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goodlinks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGoodLinksImporter_ImportFile(t *testing.T) {
	store := &memoryLinkStorage{}
	importer := NewGoodLinksImporter(store, mockLogger{})

	result, err := importer.ImportFile(writeExport(t, goodLinksExport))
	require.NoError(t, err)

	assert.Equal(t, Result{Source: domain.SourceReadLater, Found: 2, SkippedIneligible: 1, Merged: 1}, result)
	assert.Equal(t, []domain.SerializedLink{
		{URL: "https://x.com", Title: "X", Tags: []string{"t"}, Source: domain.SourceReadLater},
	}, store.links)
}

func TestGoodLinksImporter_MissingTitleDefaultsToEmpty(t *testing.T) {
	store := &memoryLinkStorage{}
	importer := NewGoodLinksImporter(store, mockLogger{})

	_, err := importer.ImportFile(writeExport(t, `[{"url": "https://z.com", "readAt": 1.5, "tags": []}]`))
	require.NoError(t, err)

	require.Len(t, store.links, 1)
	assert.Equal(t, "", store.links[0].Title)
}

func TestGoodLinksImporter_ReimportIsIdempotent(t *testing.T) {
	store := &memoryLinkStorage{}
	importer := NewGoodLinksImporter(store, mockLogger{})
	path := writeExport(t, goodLinksExport)

	_, err := importer.ImportFile(path)
	require.NoError(t, err)
	before := store.links

	result, err := importer.ImportFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Merged)
	assert.Equal(t, 1, result.SkippedExisting)
	assert.Equal(t, before, store.links)
}

func TestGoodLinksImporter_RemovedItemKeepsVaultRecord(t *testing.T) {
	store := &memoryLinkStorage{links: []domain.SerializedLink{
		{URL: "https://x.com", Title: "X from notes", Tags: []string{}, Source: domain.SourceVault},
		{URL: "https://old.com", Title: "Old", Tags: []string{}, Source: domain.SourceReadLater},
	}}
	importer := NewGoodLinksImporter(store, mockLogger{})

	_, err := importer.ImportFile(writeExport(t, `[{"url": "https://w.com", "readAt": 5, "title": "W", "tags": []}]`))
	require.NoError(t, err)

	assert.Equal(t, []domain.SerializedLink{
		{URL: "https://x.com", Title: "X from notes", Tags: []string{}, Source: domain.SourceVault},
		{URL: "https://w.com", Title: "W", Tags: []string{}, Source: domain.SourceReadLater},
	}, store.links)
}

func TestGoodLinksImporter_MissingExport(t *testing.T) {
	importer := NewGoodLinksImporter(&memoryLinkStorage{}, mockLogger{})

	_, err := importer.ImportFile(filepath.Join(t.TempDir(), "goodlinks.json"))
	assert.True(t, coreerrors.IsNotFound(err), "expected NotFoundError, got %v", err)
}

func TestGoodLinksImporter_CorruptExport(t *testing.T) {
	store := &memoryLinkStorage{}
	importer := NewGoodLinksImporter(store, mockLogger{})

	_, err := importer.ImportFile(writeExport(t, `{"url": "not an array"}`))
	assert.Error(t, err)
	assert.Equal(t, 0, store.saves)
}

func TestGoodLinksImporter_LoadFailureIsFatal(t *testing.T) {
	store := &memoryLinkStorage{loadErr: errDiskGone}
	importer := NewGoodLinksImporter(store, mockLogger{})

	_, err := importer.Import([]domain.ReadLaterLink{})
	assert.ErrorIs(t, err, errDiskGone)
	assert.Equal(t, 0, store.saves)
}

func TestGoodLinksImporter_WithFileStore(t *testing.T) {
	store := links.NewFileStore(filepath.Join(t.TempDir(), "links.json"), mockLogger{})
	importer := NewGoodLinksImporter(store, mockLogger{})

	_, err := importer.ImportFile(writeExport(t, goodLinksExport))
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://x.com", got[0].URL)
	assert.Equal(t, domain.SourceReadLater, got[0].Source)
}

func TestResult_Summary(t *testing.T) {
	readLater := Result{Source: domain.SourceReadLater, Merged: 1, SkippedIneligible: 2, SkippedExisting: 3}
	assert.Equal(t, "Serialized 1 GoodLinks links; skipped 2 unread links and 3 links already serialized", readLater.Summary())

	vault := Result{Source: domain.SourceVault, Merged: 4, SkippedExisting: 5}
	assert.Equal(t, "Serialized 4 Obsidian links; 5 links already serialized", vault.Summary())
}
