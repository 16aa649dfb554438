package emojidata

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrMalformedLine is returned by Parse for data lines that do not follow the
// "code points ; status # emoji version name" layout.
var ErrMalformedLine = errors.New("malformed emoji-test line")

const statusFullyQualified = "fully-qualified"

// record is one data line of emoji-test.txt.
type record struct {
	emoji   string
	status  string
	version string
	name    string
}

// Parse builds a Table from the contents of a Unicode emoji-test.txt file.
// Only fully-qualified sequences become entries. Skin tone variants are folded
// into their base entry as SupportsSkinTone.
func Parse(data []byte) (*Table, error) {
	t := &Table{byEmoji: make(map[string]int)}
	byName := make(map[string]int)

	// Base names of skin tone variants, resolved once every base is known.
	var variantBases []string

	var group, subgroup string
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "# group:"); ok {
			group = strings.TrimSpace(rest)
			t.groups = append(t.groups, group)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "# subgroup:"); ok {
			subgroup = strings.TrimSpace(rest)
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if rec.status != statusFullyQualified {
			continue
		}
		if base, ok := skinToneBase(rec.name); ok {
			variantBases = append(variantBases, base)
			continue
		}
		if _, dup := t.byEmoji[rec.emoji]; dup {
			continue
		}

		idx := len(t.entries)
		t.entries = append(t.entries, Emoji{
			Character:            rec.emoji,
			Name:                 rec.name,
			Slug:                 Slugify(rec.name),
			Group:                group,
			Subgroup:             subgroup,
			EmojiVersion:         rec.version,
			SupportsHighContrast: true,
		})
		t.byEmoji[rec.emoji] = idx
		if _, ok := byName[rec.name]; !ok {
			byName[rec.name] = idx
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading emoji data: %w", err)
	}

	for _, base := range variantBases {
		if i, ok := byName[base]; ok {
			t.entries[i].SupportsSkinTone = true
		}
	}

	return t, nil
}

// parseLine splits a data line such as
//
//	1F600 ; fully-qualified # 😀 E1.0 grinning face
func parseLine(line string) (record, error) {
	fields, comment, ok := strings.Cut(line, "#")
	if !ok {
		return record{}, fmt.Errorf("%w: missing comment: %q", ErrMalformedLine, line)
	}
	cps, status, ok := strings.Cut(fields, ";")
	if !ok {
		return record{}, fmt.Errorf("%w: missing status: %q", ErrMalformedLine, line)
	}

	emoji, err := decodeCodePoints(cps)
	if err != nil {
		return record{}, err
	}

	// The comment starts with the rendered emoji, which is dropped in favour
	// of the decoded code points.
	_, rest, ok := strings.Cut(strings.TrimSpace(comment), " ")
	if !ok {
		return record{}, fmt.Errorf("%w: missing name: %q", ErrMalformedLine, line)
	}
	version, name, ok := strings.Cut(strings.TrimSpace(rest), " ")
	if !ok || !strings.HasPrefix(version, "E") {
		return record{}, fmt.Errorf("%w: missing version: %q", ErrMalformedLine, line)
	}

	return record{
		emoji:   emoji,
		status:  strings.TrimSpace(status),
		version: version,
		name:    strings.TrimSpace(name),
	}, nil
}

func decodeCodePoints(s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: no code points", ErrMalformedLine)
	}

	var b strings.Builder
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return "", fmt.Errorf("%w: code point %q: %w", ErrMalformedLine, f, err)
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: invalid code point %q", ErrMalformedLine, f)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// skinToneBase reports whether name belongs to a skin tone variant and
// returns the name of its base emoji. The skin tone qualifiers are the
// comma-separated parts after ": " that end in "skin tone":
//
//	"waving hand: light skin tone"              -> "waving hand"
//	"kiss: woman, man, light skin tone"         -> "kiss: woman, man"
//	"man: medium skin tone, curly hair"         -> "man: curly hair"
func skinToneBase(name string) (string, bool) {
	prefix, quals, ok := strings.Cut(name, ": ")
	if !ok {
		return "", false
	}

	parts := strings.Split(quals, ", ")
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.HasSuffix(p, "skin tone") {
			continue
		}
		kept = append(kept, p)
	}

	switch {
	case len(kept) == len(parts):
		return "", false
	case len(kept) == 0:
		return prefix, true
	default:
		return prefix + ": " + strings.Join(kept, ", "), true
	}
}
