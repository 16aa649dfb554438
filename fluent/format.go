package fluent

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// slugFixes corrects slugs whose spelling differs from the asset file names.
var slugFixes = map[string]string{
	"smiling_face_with_heart_eyes": "smiling_face_with_heart-eyes",
}

func fixSlug(slug string) string {
	if fixed, ok := slugFixes[slug]; ok {
		return fixed
	}
	return slug
}

// url.QueryEscape writes spaces as "+" and escapes !'()*, which asset paths
// keep literal.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent percent-encodes s for use as a single URL path segment,
// leaving only A-Z a-z 0-9 and -_.!~*'() unescaped.
func escapeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// formatName turns an emoji name into its asset directory: the first
// character is upper-cased, the rest is kept, and the result is escaped.
//
//	"face with tears of joy" -> "Face%20with%20tears%20of%20joy"
func formatName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return escapeComponent(name)
	}
	// Casers carry state, so one is made per call.
	first := cases.Upper(language.Und).String(name[:size])
	return escapeComponent(first + name[size:])
}
