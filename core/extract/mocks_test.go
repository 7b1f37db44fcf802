package extract

import (
	"iter"
	"slices"

	"sync-bookmarks/core/domain"
)

// scriptedSource replays a fixed event list regardless of the document.
type scriptedSource struct {
	events []domain.MarkdownEvent
}

func (s *scriptedSource) Events(document []byte) iter.Seq[domain.MarkdownEvent] {
	return slices.Values(s.events)
}

type mockLogger struct {
	debugs []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) { l.debugs = append(l.debugs, msg) }
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}
