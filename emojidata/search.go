package emojidata

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// names adapts a table to fuzzy.Source, matching against emoji names.
type names []Emoji

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }

// Search returns the entries whose names fuzzy-match query, best match first.
// A limit <= 0 returns every match.
func (t *Table) Search(query string, limit int) []Emoji {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, names(t.entries))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Emoji, len(matches))
	for i, m := range matches {
		out[i] = t.entries[m.Index]
	}
	return out
}

// Search searches the default table.
func Search(query string, limit int) []Emoji {
	return Default().Search(query, limit)
}
