package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m96-chan/fluentmoji/internal/clipboard"
	"github.com/m96-chan/fluentmoji/internal/config"
)

type fakeClipboard struct {
	text    string
	err     error
	missing bool
}

func (f *fakeClipboard) Available() bool { return !f.missing }

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func (f *fakeClipboard) ReadText() (string, error) { return f.text, f.err }

// runCLI runs the CLI with an isolated config and log file.
func runCLI(t *testing.T, stdin string, clip *fakeClipboard, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"-config-path", filepath.Join(dir, "config.toml"),
		"-log-path", filepath.Join(dir, "fluentmoji.log"),
	}
	if clip == nil {
		clip = &fakeClipboard{}
	}
	var out bytes.Buffer
	err := run(append(base, args...), strings.NewReader(stdin), &out, clip)
	return out.String(), err
}

const wavingFlat = "https://raw.githubusercontent.com/microsoft/fluentui-emoji/main/assets/Waving%20hand/Default/Flat/waving_hand_flat_default.svg"

func TestRun_Convert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default style",
			args: []string{"👋"},
			want: wavingFlat + "\n",
		},
		{
			name: "3d with tone",
			args: []string{"-style", "3d", "-skin-tone", "medium-dark", "👋"},
			want: "https://raw.githubusercontent.com/microsoft/fluentui-emoji/main/assets/Waving%20hand/Medium-Dark/3D/waving_hand_3d_medium_dark.png\n",
		},
		{
			name: "shortcode",
			args: []string{":wave:"},
			want: wavingFlat + "\n",
		},
		{
			name: "text-style shortcode",
			args: []string{":detective:"},
			want: "https://raw.githubusercontent.com/microsoft/fluentui-emoji/main/assets/Detective/Default/Flat/detective_flat_default.svg\n",
		},
		{
			name: "unknown echoed",
			args: []string{"nope", "👋"},
			want: "nope\n" + wavingFlat + "\n",
		},
		{
			name: "base url",
			args: []string{"-base-url", "https://example.com/assets", "😀"},
			want: "https://example.com/assets/Grinning%20face/Flat/grinning_face_flat.svg\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, "", nil, tt.args...)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_Stdin(t *testing.T) {
	got, err := runCLI(t, "👋\n", nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got != wavingFlat+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestRun_NoInput(t *testing.T) {
	_, err := runCLI(t, "", nil)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestRun_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"style", []string{"-style", "sepia", "👋"}},
		{"skin tone", []string{"-skin-tone", "green", "👋"}},
		{"format", []string{"-format", "yaml", "👋"}},
		{"color", []string{"-color", "sometimes", "👋"}},
		{"limit", []string{"-search", "face", "-limit", "-3"}},
		{"log level", []string{"-log-level", "loud", "👋"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, "", nil, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRun_All(t *testing.T) {
	got, err := runCLI(t, "", nil, "-all", "😀")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 variants, got %d:\n%s", len(lines), got)
	}

	got, err = runCLI(t, "", nil, "-all", "👋")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines = strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 19 {
		t.Errorf("expected 19 variants, got %d", len(lines))
	}
}

func TestRun_Search(t *testing.T) {
	got, err := runCLI(t, "", nil, "-search", "waving hand", "-limit", "3", "-format", config.FormatJSON)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, got)
	}
	if len(decoded) == 0 || len(decoded) > 3 {
		t.Fatalf("expected 1 to 3 results, got %d", len(decoded))
	}
	if decoded[0]["name"] != "waving hand" {
		t.Errorf("best match = %v, want waving hand", decoded[0]["name"])
	}
}

func TestRun_Copy(t *testing.T) {
	clip := &fakeClipboard{}
	got, err := runCLI(t, "", clip, "-copy", "-color", "always", "👋")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if clip.text != wavingFlat {
		t.Errorf("clipboard = %q, want %q", clip.text, wavingFlat)
	}
	if got != wavingFlat+"\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRun_CopyError(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	if _, err := runCLI(t, "", clip, "-copy", "👋"); err == nil {
		t.Error("expected clipboard error")
	}
}

func TestRun_ClipboardMissing(t *testing.T) {
	for _, flag := range []string{"-copy", "-paste"} {
		t.Run(flag, func(t *testing.T) {
			clip := &fakeClipboard{missing: true}
			_, err := runCLI(t, "", clip, flag, "👋")
			if !errors.Is(err, clipboard.ErrNoProvider) {
				t.Errorf("expected ErrNoProvider, got %v", err)
			}
		})
	}
}

func TestRun_Paste(t *testing.T) {
	clip := &fakeClipboard{text: "👋\n"}
	got, err := runCLI(t, "", clip, "-paste")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got != wavingFlat+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-version"}, strings.NewReader(""), &out, &fakeClipboard{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "fluentmoji "+Version) {
		t.Errorf("unexpected version output %q", out.String())
	}
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-h"}, strings.NewReader(""), &out, &fakeClipboard{}); err != nil {
		t.Fatalf("-h should not fail: %v", err)
	}
	if !strings.Contains(out.String(), "-skin-tone") {
		t.Error("usage should list flags")
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode string
		want bool
	}{
		{config.ColorAlways, true},
		{config.ColorNever, false},
		{config.ColorAuto, false},
	}
	for _, tt := range tests {
		if got := useColor(tt.mode, &buf); got != tt.want {
			t.Errorf("useColor(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
