// Package emojidata is the read-only emoji metadata table used to resolve
// Fluent emoji assets. It is built once, on first use, from the Unicode
// emoji-test.txt file embedded in the binary.
package emojidata

import (
	_ "embed"
	"sync"
)

//go:embed emoji-test.txt
var emojiTest []byte

// Emoji holds the metadata of a single fully-qualified emoji.
type Emoji struct {
	// Character is the exact emoji sequence the entry is keyed by.
	Character string `json:"emoji"`
	// Name is the CLDR short name, e.g. "grinning face".
	Name string `json:"name"`
	// Slug is the identifier used in asset file names, e.g. "grinning_face".
	Slug         string `json:"slug"`
	Group        string `json:"group"`
	Subgroup     string `json:"subgroup"`
	EmojiVersion string `json:"emoji_version"`
	// SupportsSkinTone is set when Unicode defines skin tone variants of the
	// emoji.
	SupportsSkinTone     bool `json:"skin_tone_support"`
	SupportsHighContrast bool `json:"high_contrast_support"`
}

// Table is an exact-match emoji metadata table.
type Table struct {
	byEmoji map[string]int
	entries []Emoji
	groups  []string
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the table built from the embedded emoji-test.txt.
func Default() *Table {
	defaultTableOnce.Do(func() {
		t, err := Parse(emojiTest)
		if err != nil {
			panic("emojidata: embedded emoji-test.txt: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the metadata for the given emoji sequence. The match is
// exact: sequences that differ by a variation selector are distinct keys.
func (t *Table) Lookup(emoji string) (Emoji, bool) {
	i, ok := t.byEmoji[emoji]
	if !ok {
		return Emoji{}, false
	}
	return t.entries[i], true
}

// All returns every entry in file (CLDR) order.
func (t *Table) All() []Emoji {
	out := make([]Emoji, len(t.entries))
	copy(out, t.entries)
	return out
}

// Groups returns the group names in file order.
func (t *Table) Groups() []string {
	out := make([]string, len(t.groups))
	copy(out, t.groups)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup looks the emoji up in the default table.
func Lookup(emoji string) (Emoji, bool) {
	return Default().Lookup(emoji)
}

// All returns every entry of the default table.
func All() []Emoji {
	return Default().All()
}

// Groups returns the group names of the default table.
func Groups() []string {
	return Default().Groups()
}

// Len returns the size of the default table.
func Len() int {
	return Default().Len()
}
