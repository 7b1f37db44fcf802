// ABOUTME: Link domain models for canonical and source-specific link records
// ABOUTME: Converts GoodLinks and Obsidian records into the canonical SerializedLink form

package domain

// SerializedLink is the canonical record kept in the link store. URL is the
// identity and is never rewritten once stored.
type SerializedLink struct {
	URL    string     `json:"url"`
	Title  string     `json:"title"`
	Tags   []string   `json:"tags"`
	Source LinkSource `json:"source"`
}

// Clone returns a copy that shares no slices with l.
func (l SerializedLink) Clone() SerializedLink {
	l.Tags = cloneTags(l.Tags)
	return l
}

// ReadLaterLink is one entry of a GoodLinks JSON export.
type ReadLaterLink struct {
	URL    string   `json:"url"`
	Title  *string  `json:"title,omitempty"`
	Tags   []string `json:"tags"`
	ReadAt *float64 `json:"readAt,omitempty"`
}

// IsRead reports whether the entry has been read. Unread entries are never imported.
func (l ReadLaterLink) IsRead() bool {
	return l.ReadAt != nil
}

// Canonical converts the export entry into a canonical link.
func (l ReadLaterLink) Canonical() SerializedLink {
	title := ""
	if l.Title != nil {
		title = *l.Title
	}
	return SerializedLink{
		URL:    l.URL,
		Title:  title,
		Tags:   cloneTags(l.Tags),
		Source: SourceReadLater,
	}
}

// VaultLink is a link found in a vault note.
type VaultLink struct {
	Title string
	URL   string
}

// Canonical converts the extracted link into a canonical link with no tags.
func (l VaultLink) Canonical() SerializedLink {
	return SerializedLink{
		URL:    l.URL,
		Title:  l.Title,
		Tags:   []string{},
		Source: SourceVault,
	}
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
