package emojidata

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugReplacer = strings.NewReplacer(
	"*", "asterisk",
	"#", "number sign",
)

// stripMarks decomposes the input and drops the combining diacritical marks
// block, so "Côte d’Ivoire" becomes "Cote d’Ivoire".
func stripMarks() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(func(r rune) bool {
			return r >= 0x0300 && r <= 0x036f
		})),
	)
}

// Slugify turns an emoji name into its asset slug: "*" and "#" are spelled
// out, accents are removed, every run of characters outside [A-Za-z0-9_]
// becomes a single underscore and the result is lowercased.
//
//	"smiling face with heart-eyes" -> "smiling_face_with_heart_eyes"
//	"flag: Côte d’Ivoire"          -> "flag_cote_d_ivoire"
//	"keycap: #"                    -> "keycap_number_sign"
func Slugify(name string) string {
	name = slugReplacer.Replace(name)
	if s, _, err := transform.String(stripMarks(), name); err == nil {
		name = s
	}

	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range name {
		if !isWordRune(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
