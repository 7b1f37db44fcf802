package importer

import (
	"errors"

	"sync-bookmarks/core/domain"
)

type memoryLinkStorage struct {
	links   []domain.SerializedLink
	saves   int
	loadErr error
}

func (m *memoryLinkStorage) Load() ([]domain.SerializedLink, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]domain.SerializedLink, len(m.links))
	for i, link := range m.links {
		out[i] = link.Clone()
	}
	return out, nil
}

func (m *memoryLinkStorage) Save(links []domain.SerializedLink) error {
	m.saves++
	m.links = links
	return nil
}

var errDiskGone = errors.New("disk gone")

type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}
