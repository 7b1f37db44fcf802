package fetch

import (
	"context"
	"errors"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
)

type mockCache struct {
	entries   map[string]domain.CachedLink
	order     []string
	queryErr  error
	insertErr error
	// rejected URLs fail validation on both Query and Insert
	rejected map[string]bool
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]domain.CachedLink)}
}

func (m *mockCache) Query(ctx context.Context, url string) (*domain.CachedLink, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if m.rejected[url] {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "rejected"}
	}
	link, ok := m.entries[url]
	if !ok {
		return nil, nil
	}
	link = link.Clone()
	return &link, nil
}

func (m *mockCache) QueryAll(ctx context.Context) ([]domain.CachedLink, error) {
	out := make([]domain.CachedLink, 0, len(m.order))
	for _, url := range m.order {
		out = append(out, m.entries[url].Clone())
	}
	return out, nil
}

func (m *mockCache) QueryUnarchived(ctx context.Context) ([]domain.CachedLink, error) {
	return m.QueryAll(ctx)
}

func (m *mockCache) Insert(ctx context.Context, link domain.CachedLink) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if m.rejected[link.URL] {
		return &coreerrors.ValidationError{Field: "url", Message: "rejected"}
	}
	if _, ok := m.entries[link.URL]; ok {
		return &coreerrors.DuplicateKeyError{Table: "mock", Key: link.URL}
	}
	m.entries[link.URL] = link.Clone()
	m.order = append(m.order, link.URL)
	return nil
}

type mockScraper struct {
	calls    map[string]int
	failures map[string]error
}

func newMockScraper() *mockScraper {
	return &mockScraper{calls: make(map[string]int), failures: make(map[string]error)}
}

func (m *mockScraper) Scrape(ctx context.Context, url string) (domain.Article, error) {
	m.calls[url]++
	if err, ok := m.failures[url]; ok {
		return domain.Article{}, err
	}
	return domain.Article{Title: "Title of " + url, TextContent: "text of " + url}, nil
}

func (m *mockScraper) totalCalls() int {
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

type mockProgress struct {
	started    int
	total      int
	increments int
	finished   []string
}

func (m *mockProgress) Start(message string, total int) {
	m.started++
	m.total = total
}

func (m *mockProgress) Increment() { m.increments++ }

func (m *mockProgress) Finish(message string) { m.finished = append(m.finished, message) }

type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type failingStore struct{}

func (failingStore) Load() ([]domain.SerializedLink, error) { return nil, errStorage }
func (failingStore) Save([]domain.SerializedLink) error      { return errStorage }

type staticStore struct {
	links []domain.SerializedLink
}

func (s staticStore) Load() ([]domain.SerializedLink, error) { return s.links, nil }
func (s staticStore) Save([]domain.SerializedLink) error      { return nil }

var errStorage = errors.New("storage unavailable")
