package fluent

// DefaultBaseURL is the root of the Fluent UI emoji assets on GitHub.
const DefaultBaseURL = "https://raw.githubusercontent.com/microsoft/fluentui-emoji/main/assets"

// Config controls how URLs are built. Zero fields fall back to
// DefaultConfig.
type Config struct {
	BaseURL      string `toml:"base_url" json:"base_url,omitempty"`
	DefaultStyle Style  `toml:"default_style" json:"default_style,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		DefaultStyle: StyleFlat,
	}
}

// Merge returns c with every zero field taken from base.
func (c Config) Merge(base Config) Config {
	if c.BaseURL == "" {
		c.BaseURL = base.BaseURL
	}
	if c.DefaultStyle == StyleUnspecified {
		c.DefaultStyle = base.DefaultStyle
	}
	return c
}
