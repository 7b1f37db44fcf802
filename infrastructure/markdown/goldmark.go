// ABOUTME: Goldmark-backed markdown tokenizer producing inline link events
// ABOUTME: Front matter is stripped before parsing so metadata is not read as body text

package markdown

import (
	"bytes"
	"iter"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"sync-bookmarks/core/domain"
)

// GoldmarkSource implements interfaces.MarkdownEventSource using the goldmark parser.
// It holds no per-document state, so one instance can tokenize any number of notes.
type GoldmarkSource struct {
	md goldmark.Markdown
}

// NewGoldmarkSource builds a source with the extensions commonly found in vault
// notes. Linkify is left out: bare URLs are picked up from the raw text instead.
func NewGoldmarkSource() *GoldmarkSource {
	return &GoldmarkSource{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.TaskList,
				extension.Footnote,
			),
		),
	}
}

// Events parses document and yields its inline events in document order.
func (s *GoldmarkSource) Events(document []byte) iter.Seq[domain.MarkdownEvent] {
	return func(yield func(domain.MarkdownEvent) bool) {
		body := StripFrontMatter(document)
		root := s.md.Parser().Parse(text.NewReader(body))

		_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			event, status, ok := toEvent(n, entering, body)
			if !ok {
				return status, nil
			}
			if !yield(event) {
				return ast.WalkStop, nil
			}
			return status, nil
		})
	}
}

func toEvent(n ast.Node, entering bool, source []byte) (domain.MarkdownEvent, ast.WalkStatus, bool) {
	switch node := n.(type) {
	case *ast.Link:
		if entering {
			return domain.MarkdownEvent{
				Kind:        domain.EventLinkStart,
				Destination: string(node.Destination),
			}, ast.WalkContinue, true
		}
		return domain.MarkdownEvent{Kind: domain.EventLinkEnd}, ast.WalkContinue, true
	case *ast.Text:
		if !entering {
			return domain.MarkdownEvent{}, ast.WalkContinue, false
		}
		return domain.MarkdownEvent{
			Kind: domain.EventText,
			Text: string(node.Segment.Value(source)),
		}, ast.WalkContinue, true
	case *ast.String:
		if !entering {
			return domain.MarkdownEvent{}, ast.WalkContinue, false
		}
		return domain.MarkdownEvent{Kind: domain.EventText, Text: string(node.Value)}, ast.WalkContinue, true
	case *ast.CodeSpan:
		if !entering {
			return domain.MarkdownEvent{}, ast.WalkContinue, false
		}
		return domain.MarkdownEvent{
			Kind: domain.EventCode,
			Text: codeSpanText(node, source),
		}, ast.WalkSkipChildren, true
	default:
		if !entering {
			return domain.MarkdownEvent{}, ast.WalkContinue, false
		}
		return domain.MarkdownEvent{Kind: domain.EventOther}, ast.WalkContinue, true
	}
}

func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			b.Write(child.Segment.Value(source))
		case *ast.String:
			b.Write(child.Value)
		}
	}
	return b.String()
}

// StripFrontMatter returns the note body without its front matter block. Notes
// without front matter, or with front matter that does not parse, are returned
// unchanged.
func StripFrontMatter(document []byte) []byte {
	var meta map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(document), &meta)
	if err != nil {
		return document
	}
	return body
}
