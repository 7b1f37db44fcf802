package domain

// MarkdownEventKind classifies an inline markdown event.
type MarkdownEventKind int

const (
	EventOther MarkdownEventKind = iota
	EventLinkStart
	EventText
	EventCode
	EventLinkEnd
)

// MarkdownEvent is one event of a document's inline markup stream. Destination
// is set on EventLinkStart, Text on EventText and EventCode.
type MarkdownEvent struct {
	Kind        MarkdownEventKind
	Text        string
	Destination string
}
