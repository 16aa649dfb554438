package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// StyleWrapper wraps tcell.Style and implements TOML unmarshalling.
// In TOML it is represented as a table with optional "foreground",
// "background", and "attributes" string fields. The tview tag spelling of the
// style is kept alongside for text rendered through tview color tags.
type StyleWrapper struct {
	tcell.Style

	fg    string
	bg    string
	attrs string // tview attribute letters, e.g. "bu"
}

// UnmarshalTOML implements the toml.Unmarshaler interface.
func (s *StyleWrapper) UnmarshalTOML(data any) error {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("expected table for style, got %T", data)
	}

	fg, _ := m["foreground"].(string)
	bg, _ := m["background"].(string)
	attrs, _ := m["attributes"].(string)

	if _, err := stringToAttrMask(attrs); err != nil {
		return err
	}

	*s = makeStyle(fg, bg, attrsToTviewString(attrs))
	return nil
}

// makeStyle builds a style from color names and tview attribute letters.
func makeStyle(fg, bg, attrs string) StyleWrapper {
	style := tcell.StyleDefault
	if fg != "" {
		style = style.Foreground(tcell.GetColor(fg))
	}
	if bg != "" {
		style = style.Background(tcell.GetColor(bg))
	}

	var mask tcell.AttrMask
	for _, r := range attrs {
		mask |= attrLetters[r]
	}
	style = style.Attributes(mask)

	return StyleWrapper{Style: style, fg: fg, bg: bg, attrs: attrs}
}

// IsSet reports whether any part of the style was configured.
func (s StyleWrapper) IsSet() bool {
	return s.fg != "" || s.bg != "" || s.attrs != ""
}

// Tag returns the tview color tag that starts this style.
func (s StyleWrapper) Tag() string {
	if s.bg == "" && s.attrs == "" {
		if s.fg == "" {
			return "[-]"
		}
		return "[" + s.fg + "]"
	}
	return "[" + orDash(s.fg) + ":" + orDash(s.bg) + ":" + orDash(s.attrs) + "]"
}

// Reset returns the tview tag that ends this style.
func (s StyleWrapper) Reset() string {
	switch {
	case s.attrs != "":
		return "[-::-]"
	case s.bg != "":
		return "[-:-]"
	default:
		return "[-]"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var attrNames = []struct {
	name   string
	letter rune
	mask   tcell.AttrMask
}{
	{"bold", 'b', tcell.AttrBold},
	{"italic", 'i', tcell.AttrItalic},
	{"underline", 'u', tcell.AttrUnderline},
	{"dim", 'd', tcell.AttrDim},
	{"reverse", 'r', tcell.AttrReverse},
	{"blink", 'l', tcell.AttrBlink},
	{"strikethrough", 's', tcell.AttrStrikeThrough},
}

var attrLetters = func() map[rune]tcell.AttrMask {
	m := make(map[rune]tcell.AttrMask, len(attrNames))
	for _, a := range attrNames {
		m[a.letter] = a.mask
	}
	return m
}()

// stringToAttrMask parses a pipe-separated list of attribute names into
// a tcell.AttrMask. For example: "bold|underline".
func stringToAttrMask(s string) (tcell.AttrMask, error) {
	var mask tcell.AttrMask
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "none" || part == "" {
			continue
		}
		found := false
		for _, a := range attrNames {
			if a.name == part {
				mask |= a.mask
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown style attribute: %q", part)
		}
	}
	return mask, nil
}

// attrsToTviewString converts "bold|underline" into tview's "bu".
func attrsToTviewString(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		for _, a := range attrNames {
			if a.name == part {
				b.WriteRune(a.letter)
				break
			}
		}
	}
	return b.String()
}

// Theme holds the picker theme configuration.
type Theme struct {
	Preset string       `toml:"preset"`
	Border BorderTheme  `toml:"border"`
	Title  StyleWrapper `toml:"title"`
	List   ListTheme    `toml:"list"`
	Input  StyleWrapper `toml:"input"`
}

// BorderTheme configures border styling.
type BorderTheme struct {
	Focused StyleWrapper `toml:"focused"`
	Normal  StyleWrapper `toml:"normal"`
}

// ListTheme configures the result list styling.
type ListTheme struct {
	Name     StyleWrapper `toml:"name"`
	Detail   StyleWrapper `toml:"detail"`
	Selected StyleWrapper `toml:"selected"`
}

// withPreset fills every unset style of t from preset.
func (t Theme) withPreset(preset Theme) Theme {
	pick := func(s, def StyleWrapper) StyleWrapper {
		if s.IsSet() {
			return s
		}
		return def
	}

	t.Preset = preset.Preset
	t.Border.Focused = pick(t.Border.Focused, preset.Border.Focused)
	t.Border.Normal = pick(t.Border.Normal, preset.Border.Normal)
	t.Title = pick(t.Title, preset.Title)
	t.List.Name = pick(t.List.Name, preset.List.Name)
	t.List.Detail = pick(t.List.Detail, preset.List.Detail)
	t.List.Selected = pick(t.List.Selected, preset.List.Selected)
	t.Input = pick(t.Input, preset.Input)
	return t
}

// BuiltinTheme returns a fully populated Theme for the given preset name.
// Unknown names fall back to "default".
func BuiltinTheme(name string) Theme {
	switch name {
	case "monochrome":
		return Theme{
			Preset: "monochrome",
			Border: BorderTheme{
				Focused: makeStyle("white", "", "b"),
				Normal:  makeStyle("white", "", ""),
			},
			Title: makeStyle("white", "", "b"),
			List: ListTheme{
				Name:     makeStyle("white", "", ""),
				Detail:   makeStyle("white", "", "d"),
				Selected: makeStyle("white", "", "r"),
			},
			Input: makeStyle("white", "", "u"),
		}
	case "high_contrast":
		return Theme{
			Preset: "high_contrast",
			Border: BorderTheme{
				Focused: makeStyle("yellow", "", "b"),
				Normal:  makeStyle("white", "", ""),
			},
			Title: makeStyle("yellow", "", "b"),
			List: ListTheme{
				Name:     makeStyle("white", "black", "b"),
				Detail:   makeStyle("aqua", "black", ""),
				Selected: makeStyle("black", "yellow", "b"),
			},
			Input: makeStyle("white", "black", ""),
		}
	default:
		return Theme{
			Preset: "default",
			Border: BorderTheme{
				Focused: makeStyle("blue", "", ""),
				Normal:  makeStyle("gray", "", ""),
			},
			Title: makeStyle("white", "", "b"),
			List: ListTheme{
				Name:     makeStyle("white", "", ""),
				Detail:   makeStyle("gray", "", ""),
				Selected: makeStyle("blue", "", "b"),
			},
			Input: makeStyle("white", "", ""),
		}
	}
}
