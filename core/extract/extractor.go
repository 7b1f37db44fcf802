// ABOUTME: Markdown link extraction for vault notes
// ABOUTME: Combines formatted markdown links with bare URLs found in the raw text

package extract

import (
	"regexp"
	"strings"

	"sync-bookmarks/core/domain"
	"sync-bookmarks/core/interfaces"
)

// bareURLPattern stops at whitespace and closing brackets so "(https://a.com)"
// yields "https://a.com".
var bareURLPattern = regexp.MustCompile(`https?://[^\s)\]]*`)

// Extractor finds links in a single markdown document.
type Extractor struct {
	events interfaces.MarkdownEventSource
}

// NewExtractor creates an extractor reading inline events from events.
func NewExtractor(events interfaces.MarkdownEventSource) *Extractor {
	return &Extractor{events: events}
}

// Extract returns the document's links in order of first appearance. Formatted
// links come first, then bare URLs not already seen; each URL appears once.
func (e *Extractor) Extract(document []byte) []domain.VaultLink {
	links := make([]domain.VaultLink, 0)
	seen := make(map[string]struct{})

	for _, link := range e.formattedLinks(document) {
		if _, ok := seen[link.URL]; ok {
			continue
		}
		seen[link.URL] = struct{}{}
		links = append(links, link)
	}

	for _, url := range bareURLPattern.FindAllString(string(document), -1) {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		links = append(links, domain.VaultLink{Title: url, URL: url})
	}

	return links
}

// formattedLinks runs the idle / inside-link state machine over the event stream.
func (e *Extractor) formattedLinks(document []byte) []domain.VaultLink {
	var (
		links       []domain.VaultLink
		insideLink  bool
		destination string
		title       strings.Builder
	)

	for event := range e.events.Events(document) {
		switch event.Kind {
		case domain.EventLinkStart:
			insideLink = true
			destination = event.Destination
			title.Reset()
		case domain.EventText, domain.EventCode:
			if insideLink {
				title.WriteString(event.Text)
			}
		case domain.EventLinkEnd:
			if insideLink && destination != "" && title.Len() > 0 {
				links = append(links, domain.VaultLink{Title: title.String(), URL: destination})
			}
			insideLink = false
			destination = ""
			title.Reset()
		}
	}

	return links
}
