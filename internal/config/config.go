package config

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/m96-chan/fluentmoji/fluent"
	"github.com/m96-chan/fluentmoji/internal/consts"
)

//go:embed config.toml
var defaultConfig []byte

// Output formats.
const (
	FormatURL      = "url"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatSlack    = "slack"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration.
type Config struct {
	BaseURL         string          `toml:"base_url"`
	DefaultStyle    fluent.Style    `toml:"default_style"`
	DefaultSkinTone fluent.SkinTone `toml:"default_skin_tone"`

	Output   Output   `toml:"output"`
	Search   Search   `toml:"search"`
	Keybinds Keybinds `toml:"keybinds"`
	Theme    Theme    `toml:"theme"`
}

// Output controls how conversion results are printed.
type Output struct {
	Format      string `toml:"format"`
	Color       string `toml:"color"`
	SyntaxTheme string `toml:"syntax_theme"`
}

// Search controls emoji search.
type Search struct {
	Limit int `toml:"limit"`
}

// Fluent returns the converter configuration.
func (c *Config) Fluent() fluent.Config {
	return fluent.Config{
		BaseURL:      c.BaseURL,
		DefaultStyle: c.DefaultStyle,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(consts.ConfigDir, "config.toml")
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Load reads the config from the given path. If the file does not exist,
// it writes the default config and loads that. Config loading is two-phase:
// embedded defaults are applied first, then the user file overlays on top.
func Load(path string) (*Config, error) {
	// Phase 1: unmarshal embedded defaults.
	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}

	// Write default config if file does not exist.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, defaultConfig, 0o600); err != nil {
			return nil, err
		}
	}

	// Phase 2: overlay user file on top of defaults.
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// applyDefaults resolves computed defaults that can't be expressed in TOML.
func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = fluent.DefaultBaseURL
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatURL
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = ColorAuto
	}

	// Styles left unset by the user come from the preset.
	cfg.Theme = cfg.Theme.withPreset(BuiltinTheme(cfg.Theme.Preset))
}

// Validate checks that config values are within acceptable ranges.
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", cfg.BaseURL)
	}

	switch cfg.Output.Format {
	case FormatURL, FormatJSON, FormatMarkdown, FormatHTML, FormatSlack:
	default:
		return fmt.Errorf("output.format must be one of url, json, markdown, html, slack, got %q", cfg.Output.Format)
	}

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", cfg.Output.Color)
	}

	if cfg.Search.Limit < 1 || cfg.Search.Limit > 500 {
		return fmt.Errorf("search.limit must be between 1 and 500, got %d", cfg.Search.Limit)
	}
	return nil
}
