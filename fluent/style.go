package fluent

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when parsing a style name that is not one of
// the Fluent emoji styles.
var ErrUnknownStyle = errors.New("unknown emoji style")

// Style is a visual variant of the Fluent emoji set. The zero value means no
// style was requested.
type Style uint8

const (
	StyleUnspecified Style = iota
	Style3D
	StyleColor
	StyleFlat
	StyleHighContrast
)

// styleForm holds the spellings of a style: its name, its directory in the
// asset tree and its file name suffix.
type styleForm struct {
	name  string
	path  string
	param string
}

var styleForms = map[Style]styleForm{
	Style3D:           {"3d", "3D", "3d"},
	StyleColor:        {"color", "Color", "color"},
	StyleFlat:         {"flat", "Flat", "flat"},
	StyleHighContrast: {"high-contrast", "High Contrast", "high_contrast"},
}

// Styles returns every style in asset set order.
func Styles() []Style {
	return []Style{Style3D, StyleColor, StyleFlat, StyleHighContrast}
}

// form returns the spellings of s. Anything that is not a known style is
// spelled as flat.
func (s Style) form() styleForm {
	if f, ok := styleForms[s]; ok {
		return f
	}
	return styleForms[StyleFlat]
}

// PathSegment returns the asset directory name of the style, e.g. "High Contrast".
func (s Style) PathSegment() string { return s.form().path }

// Param returns the file name suffix of the style, e.g. "high_contrast".
func (s Style) Param() string { return s.form().param }

// Extension returns the asset file extension: 3D assets are PNG renders,
// every other style is SVG.
func (s Style) Extension() string {
	if s == Style3D {
		return "png"
	}
	return "svg"
}

// IsValid reports whether s is one of the four styles.
func (s Style) IsValid() bool {
	_, ok := styleForms[s]
	return ok
}

func (s Style) String() string {
	if s == StyleUnspecified {
		return ""
	}
	if f, ok := styleForms[s]; ok {
		return f.name
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle parses a style name such as "3d", "flat" or "high-contrast".
// Matching ignores case and accepts "_" in place of "-".
func ParseStyle(name string) (Style, error) {
	key := normalizeName(name)
	for s, f := range styleForms {
		if f.name == key {
			return s, nil
		}
	}
	return StyleUnspecified, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if s != StyleUnspecified && !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes to
// StyleUnspecified.
func (s *Style) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = StyleUnspecified
		return nil
	}
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
