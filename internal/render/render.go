// Package render prints conversion results in the supported output formats.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/m96-chan/fluentmoji/fluent"
	"github.com/m96-chan/fluentmoji/internal/config"
)

// Entry is one printed conversion. Unresolved entries print their input.
type Entry struct {
	Input  string
	Result fluent.Result
	OK     bool
}

// URL returns the asset URL, or the input when the emoji was not resolved.
func (e Entry) URL() string {
	if e.OK {
		return e.Result.URL
	}
	return e.Input
}

// Options selects the output format.
type Options struct {
	Format      string
	Color       bool
	SyntaxTheme string
}

// jsonEntry is the JSON shape of an Entry.
type jsonEntry struct {
	Emoji    string          `json:"emoji"`
	Found    bool            `json:"found"`
	Name     string          `json:"name,omitempty"`
	Slug     string          `json:"slug,omitempty"`
	Group    string          `json:"group,omitempty"`
	Style    fluent.Style    `json:"style,omitempty"`
	SkinTone fluent.SkinTone `json:"skin_tone,omitempty"`
	URL      string          `json:"url"`
}

// Write renders entries to w.
func Write(w io.Writer, entries []Entry, opts Options) error {
	switch opts.Format {
	case config.FormatURL, "":
		return writeLines(w, entries, func(e Entry) string { return e.URL() })
	case config.FormatMarkdown:
		return writeLines(w, entries, markdownLine)
	case config.FormatHTML:
		return writeLines(w, entries, htmlLine)
	case config.FormatJSON:
		data, err := json.MarshalIndent(jsonEntries(entries), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return writeJSON(w, data, opts)
	case config.FormatSlack:
		data, err := slackBlocks(entries)
		if err != nil {
			return err
		}
		return writeJSON(w, data, opts)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func writeLines(w io.Writer, entries []Entry, line func(Entry) string) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, line(e)); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, data []byte, opts Options) error {
	data = append(data, '\n')
	if opts.Color {
		return Highlight(w, string(data), "json", opts.SyntaxTheme)
	}
	_, err := io.Copy(w, bytes.NewReader(data))
	return err
}

func jsonEntries(entries []Entry) []jsonEntry {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		je := jsonEntry{Emoji: e.Input, Found: e.OK, URL: e.URL()}
		if e.OK {
			je.Name = e.Result.Emoji.Name
			je.Slug = e.Result.Emoji.Slug
			je.Group = e.Result.Emoji.Group
			je.Style = e.Result.Style
			je.SkinTone = e.Result.SkinTone
		}
		out[i] = je
	}
	return out
}

// linkURL escapes the spaces the asset tree has in some directory names
// ("High Contrast"), which markup links cannot carry.
func linkURL(u string) string {
	return strings.ReplaceAll(u, " ", "%20")
}

func markdownLine(e Entry) string {
	if !e.OK {
		return e.Input
	}
	alt := strings.NewReplacer("[", `\[`, "]", `\]`).Replace(e.Result.Emoji.Name)
	return fmt.Sprintf("![%s](%s)", alt, linkURL(e.Result.URL))
}

func htmlLine(e Entry) string {
	if !e.OK {
		return html.EscapeString(e.Input)
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" title="%s">`,
		html.EscapeString(linkURL(e.Result.URL)),
		html.EscapeString(e.Result.Emoji.Character),
		html.EscapeString(e.Result.Emoji.Name),
	)
}
