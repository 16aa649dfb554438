// Package fluent maps emoji to asset URLs in Microsoft's Fluent UI emoji set.
//
// Conversion is a pure string computation: nothing is fetched and the
// returned URL is not checked. Emoji that cannot be resolved are returned
// unchanged.
package fluent

import (
	"log/slog"
	"strings"

	"github.com/m96-chan/fluentmoji/emojidata"
)

// Source supplies emoji metadata. Lookup must match keys exactly.
type Source interface {
	Lookup(emoji string) (emojidata.Emoji, bool)
}

// Searcher is implemented by sources that can fuzzy-match entries by name.
// *emojidata.Table implements it.
type Searcher interface {
	Search(query string, limit int) []emojidata.Emoji
}

// builtinSource defers to the embedded table so it is only parsed when a
// lookup actually happens.
type builtinSource struct{}

func (builtinSource) Lookup(emoji string) (emojidata.Emoji, bool) {
	return emojidata.Lookup(emoji)
}

func (builtinSource) Search(query string, limit int) []emojidata.Emoji {
	return emojidata.Search(query, limit)
}

// Options describes a single conversion.
type Options struct {
	Emoji    string
	Style    Style
	SkinTone SkinTone
}

// Result is a resolved conversion.
type Result struct {
	Emoji emojidata.Emoji
	// Style is the effective style after defaults were applied.
	Style Style
	// SkinTone is the tone used in the URL, or SkinToneUnspecified when the
	// emoji has no skin tone variants. High contrast always uses the default.
	SkinTone SkinTone
	URL      string
}

// Option configures a Converter.
type Option func(*Converter)

// WithConfig merges cfg over the current configuration.
func WithConfig(cfg Config) Option {
	return func(c *Converter) {
		c.cfg = cfg.Merge(c.cfg)
	}
}

// WithBaseURL sets the asset root URL.
func WithBaseURL(baseURL string) Option {
	return WithConfig(Config{BaseURL: baseURL})
}

// WithDefaultStyle sets the style used when Options.Style is unspecified.
func WithDefaultStyle(s Style) Option {
	return WithConfig(Config{DefaultStyle: s})
}

// WithSource replaces the metadata source.
func WithSource(src Source) Option {
	return func(c *Converter) {
		if src != nil {
			c.source = src
		}
	}
}

// Converter resolves emoji to asset URLs. It is immutable once built and safe
// for concurrent use.
type Converter struct {
	cfg    Config
	source Source
}

// New builds a Converter on top of DefaultConfig and the embedded emoji table.
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg:    DefaultConfig(),
		source: builtinSource{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the effective configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// Convert returns the asset URL for opts.Emoji, or opts.Emoji itself when the
// emoji cannot be resolved.
func (c *Converter) Convert(opts Options) string {
	res, ok := c.Resolve(opts)
	if !ok {
		return opts.Emoji
	}
	return res.URL
}

// Resolve is Convert with the intermediate values. It reports false when the
// emoji is unknown or the metadata source failed.
func (c *Converter) Resolve(opts Options) (res Result, ok bool) {
	meta, found := c.lookup(opts.Emoji)
	if !found {
		slog.Debug("emoji not found", "emoji", opts.Emoji)
		return Result{}, false
	}

	style := opts.Style
	if style == StyleUnspecified {
		style = c.cfg.DefaultStyle
	}
	if style == StyleUnspecified {
		style = StyleFlat
	}

	res = Result{Emoji: meta, Style: style}
	if meta.SupportsSkinTone {
		res.SkinTone = opts.SkinTone
		// High contrast assets only exist for the default tone.
		if res.SkinTone == SkinToneUnspecified || style == StyleHighContrast {
			res.SkinTone = SkinToneDefault
		}
	}
	res.URL = c.buildURL(meta, res.Style, res.SkinTone)
	return res, true
}

// lookup queries the source, treating a panicking source as a miss.
func (c *Converter) lookup(emoji string) (meta emojidata.Emoji, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("emoji source failed", "emoji", emoji, "panic", r)
			meta, ok = emojidata.Emoji{}, false
		}
	}()
	return c.source.Lookup(emoji)
}

// Lookup returns the metadata the converter's source has for emoji.
func (c *Converter) Lookup(emoji string) (emojidata.Emoji, bool) {
	return c.lookup(emoji)
}

// Search returns the source entries whose names match query, best first.
// Sources that do not implement Searcher have nothing to search.
func (c *Converter) Search(query string, limit int) []emojidata.Emoji {
	s, ok := c.source.(Searcher)
	if !ok {
		return nil
	}
	return s.Search(query, limit)
}

// buildURL assembles
//
//	{base}/{Name}/{Style}/{slug}_{style}.{ext}
//	{base}/{Name}/{Tone}/{Style}/{slug}_{style}_{tone}.{ext}
//
// the second form being used for emoji with skin tone variants.
func (c *Converter) buildURL(meta emojidata.Emoji, style Style, tone SkinTone) string {
	parts := []string{c.cfg.BaseURL, formatName(meta.Name)}
	file := fixSlug(meta.Slug) + "_" + style.Param()
	if meta.SupportsSkinTone {
		parts = append(parts, tone.PathSegment())
		parts = append(parts, style.PathSegment())
		file += "_" + tone.Param()
	} else {
		parts = append(parts, style.PathSegment())
	}
	parts = append(parts, file+"."+style.Extension())
	return strings.Join(parts, "/")
}

// Variants returns every asset the set provides for emoji: each style, and
// for skin tone emoji each tone of every style but high contrast. It returns
// nil when the emoji is unknown.
func (c *Converter) Variants(emoji string) []Result {
	base, ok := c.Resolve(Options{Emoji: emoji})
	if !ok {
		return nil
	}

	var out []Result
	for _, s := range Styles() {
		if !base.Emoji.SupportsSkinTone || s == StyleHighContrast {
			out = append(out, c.resolved(base.Emoji, s, SkinToneDefault))
			continue
		}
		for _, t := range SkinTones() {
			out = append(out, c.resolved(base.Emoji, s, t))
		}
	}
	return out
}

func (c *Converter) resolved(meta emojidata.Emoji, style Style, tone SkinTone) Result {
	if !meta.SupportsSkinTone {
		tone = SkinToneUnspecified
	}
	return Result{
		Emoji:    meta,
		Style:    style,
		SkinTone: tone,
		URL:      c.buildURL(meta, style, tone),
	}
}

var defaultConverter = New()

// Convert converts with the built-in emoji table. A nil cfg uses
// DefaultConfig; otherwise the non-zero fields of cfg override it.
func Convert(opts Options, cfg *Config) string {
	if cfg == nil {
		return defaultConverter.Convert(opts)
	}
	return New(WithConfig(*cfg)).Convert(opts)
}

// Resolve resolves with the default converter.
func Resolve(opts Options) (Result, bool) {
	return defaultConverter.Resolve(opts)
}

// Variants lists the variants of emoji with the default converter.
func Variants(emoji string) []Result {
	return defaultConverter.Variants(emoji)
}
