// ABOUTME: LinkSource identifies which upstream a canonical link was imported from
// ABOUTME: Closed set of values with JSON and SQL encodings

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LinkSource is the origin of a canonical link.
type LinkSource int

const (
	// SourceReadLater marks links imported from the GoodLinks read-later export.
	SourceReadLater LinkSource = iota + 1
	// SourceVault marks links extracted from the Obsidian note vault.
	SourceVault
)

// AllLinkSources lists every valid source. Adding a source means extending this
// list along with String and ParseLinkSource.
var AllLinkSources = []LinkSource{SourceReadLater, SourceVault}

// String returns the persisted name of the source.
func (s LinkSource) String() string {
	switch s {
	case SourceReadLater:
		return "ReadLater"
	case SourceVault:
		return "Vault"
	default:
		return fmt.Sprintf("LinkSource(%d)", int(s))
	}
}

// Valid reports whether s is one of AllLinkSources.
func (s LinkSource) Valid() bool {
	switch s {
	case SourceReadLater, SourceVault:
		return true
	default:
		return false
	}
}

// ParseLinkSource converts a persisted name back into a LinkSource.
func ParseLinkSource(name string) (LinkSource, error) {
	switch name {
	case "ReadLater":
		return SourceReadLater, nil
	case "Vault":
		return SourceVault, nil
	default:
		return 0, fmt.Errorf("unknown link source %q", name)
	}
}

// MarshalJSON encodes the source by name.
func (s LinkSource) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot encode invalid link source %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a source name.
func (s *LinkSource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("link source must be a string: %w", err)
	}
	parsed, err := ParseLinkSource(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer so sources are stored as text.
func (s LinkSource) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot store invalid link source %d", int(s))
	}
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *LinkSource) Scan(src interface{}) error {
	var name string
	switch v := src.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("cannot scan %T into LinkSource", src)
	}
	parsed, err := ParseLinkSource(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
