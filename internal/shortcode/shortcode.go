// Package shortcode expands :name: emoji shortcodes into emoji characters.
package shortcode

import (
	"regexp"
	"strings"
	"sync"

	"github.com/kyokomi/emoji/v2"

	"github.com/m96-chan/fluentmoji/emojidata"
)

// variationSelector16 requests emoji presentation.
const variationSelector16 = "\uFE0F"

var (
	entries     map[string]string
	entriesOnce sync.Once

	// Shortcode: :name: (alphanumeric, underscore, hyphen, plus).
	shortcodeRe = regexp.MustCompile(`^:([a-zA-Z0-9_+\-]+):$`)
)

// buildEntries creates the name→emoji map from kyokomi/emoji, keyed without
// the surrounding colons.
func buildEntries() map[string]string {
	codeMap := emoji.CodeMap()
	result := make(map[string]string, len(codeMap))
	for k, v := range codeMap {
		name := strings.TrimPrefix(strings.TrimSuffix(k, ":"), ":")
		if name == "" {
			continue
		}
		result[name] = strings.TrimSpace(v)
	}
	return result
}

func getEntries() map[string]string {
	entriesOnce.Do(func() {
		entries = buildEntries()
	})
	return entries
}

// Lookup returns the emoji for a shortcode name given without colons.
func Lookup(name string) (string, bool) {
	e, ok := getEntries()[name]
	return e, ok
}

// IsShortcode reports whether s has the :name: form.
func IsShortcode(s string) bool {
	return shortcodeRe.MatchString(s)
}

// Expand returns the emoji for a :name: argument. Anything else, including
// unknown shortcodes, is returned unchanged. Some shortcodes map to the bare
// text-style code point; those get VS16 appended when only the
// fully-qualified form is in the emoji table.
func Expand(s string) string {
	m := shortcodeRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	e, ok := Lookup(m[1])
	if !ok {
		return s
	}
	return qualify(e)
}

func qualify(e string) string {
	if _, ok := emojidata.Lookup(e); ok {
		return e
	}
	if strings.HasSuffix(e, variationSelector16) {
		return e
	}
	if _, ok := emojidata.Lookup(e + variationSelector16); ok {
		return e + variationSelector16
	}
	return e
}
