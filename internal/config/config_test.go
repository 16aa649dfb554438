package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/m96-chan/fluentmoji/fluent"
)

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if filepath.Base(p) != "config.toml" {
		t.Errorf("DefaultPath should end with config.toml, got %s", p)
	}
}

func TestEmbeddedConfigParses(t *testing.T) {
	var cfg Config
	if _, err := toml.Decode(string(defaultConfig), &cfg); err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	if err := Validate(&cfg); err != nil {
		t.Fatalf("embedded config does not validate: %v", err)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// File should have been created.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	if cfg.BaseURL != fluent.DefaultBaseURL {
		t.Errorf("expected default base_url, got %s", cfg.BaseURL)
	}
	if cfg.DefaultStyle != fluent.StyleFlat {
		t.Errorf("expected default_style=flat, got %v", cfg.DefaultStyle)
	}
	if cfg.DefaultSkinTone != fluent.SkinToneDefault {
		t.Errorf("expected default_skin_tone=default, got %v", cfg.DefaultSkinTone)
	}
	if cfg.Output.Format != FormatURL {
		t.Errorf("expected output.format=url, got %s", cfg.Output.Format)
	}
	if cfg.Search.Limit != 20 {
		t.Errorf("expected search.limit=20, got %d", cfg.Search.Limit)
	}
	if cfg.Keybinds.Picker.NextStyle != "Ctrl+S" {
		t.Errorf("expected keybinds.picker.next_style=Ctrl+S, got %s", cfg.Keybinds.Picker.NextStyle)
	}
}

func TestLoadPartialOverridePreservesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	partial := []byte("default_style = \"high-contrast\"\n\n[output]\nformat = \"json\"\n")
	if err := os.WriteFile(path, partial, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Overridden values should apply.
	if cfg.DefaultStyle != fluent.StyleHighContrast {
		t.Errorf("expected default_style=high-contrast, got %v", cfg.DefaultStyle)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected output.format=json, got %s", cfg.Output.Format)
	}

	// Defaults should be preserved.
	if cfg.Output.SyntaxTheme != "monokai" {
		t.Errorf("expected output.syntax_theme=monokai, got %s", cfg.Output.SyntaxTheme)
	}
	if cfg.Keybinds.Picker.Close != "Esc" {
		t.Errorf("expected keybinds.picker.close=Esc, got %s", cfg.Keybinds.Picker.Close)
	}
}

func TestValidationRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"relative base_url", "base_url = \"assets\"\n"},
		{"unknown format", "[output]\nformat = \"yaml\"\n"},
		{"unknown color", "[output]\ncolor = \"sometimes\"\n"},
		{"limit too low", "[search]\nlimit = 0\n"},
		{"limit too high", "[search]\nlimit = 1000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			if err := os.WriteFile(path, []byte(tt.config), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestUnknownStyleErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("default_style = \"neon\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown style, got nil")
	}
}

func TestInvalidTOMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not valid [[ toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid TOML, got nil")
	}
}

func TestFluentConfig(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	cfg.BaseURL = "https://cdn.example.com"
	cfg.DefaultStyle = fluent.Style3D

	fc := cfg.Fluent()
	if fc.BaseURL != "https://cdn.example.com" || fc.DefaultStyle != fluent.Style3D {
		t.Errorf("unexpected fluent config: %+v", fc)
	}
}

func TestThemeOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := []byte("[theme]\npreset = \"monochrome\"\n\n[theme.title]\nforeground = \"red\"\nattributes = \"bold|underline\"\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.Theme.Title.Tag(); got != "[red:-:bu]" {
		t.Errorf("title tag = %q, want [red:-:bu]", got)
	}
	// Unset styles come from the preset.
	mono := BuiltinTheme("monochrome")
	if cfg.Theme.List.Selected.Tag() != mono.List.Selected.Tag() {
		t.Errorf("selected tag = %q, want preset %q", cfg.Theme.List.Selected.Tag(), mono.List.Selected.Tag())
	}
}

func TestThemeBadAttribute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := []byte("[theme.title]\nattributes = \"sparkly\"\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown attribute, got nil")
	}
}
