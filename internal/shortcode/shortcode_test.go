package shortcode

import "testing"

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wave", ":wave:", "\U0001F44B"},
		{"grinning", ":grinning:", "\U0001F600"},
		{"text-style value qualified", ":detective:", "\U0001F575\uFE0F"},
		{"plain emoji", "\U0001F44B", "\U0001F44B"},
		{"unknown shortcode", ":not_a_real_shortcode_xyz:", ":not_a_real_shortcode_xyz:"},
		{"no trailing colon", ":wave", ":wave"},
		{"embedded", "hi :wave:", "hi :wave:"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.in); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsShortcode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{":wave:", true},
		{":+1:", true},
		{":face-with-tears:", true},
		{"::", false},
		{"wave", false},
		{":two words:", false},
	}

	for _, tt := range tests {
		if got := IsShortcode(tt.in); got != tt.want {
			t.Errorf("IsShortcode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("wave"); !ok {
		t.Error("wave should be a known shortcode")
	}
	if _, ok := Lookup(":wave:"); ok {
		t.Error("Lookup takes names without colons")
	}
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already qualified", "\U0001F44B", "\U0001F44B"},
		{"needs vs16", "\U0001F575", "\U0001F575\uFE0F"},
		{"heart", "\u2764", "\u2764\uFE0F"},
		{"not an emoji", "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := qualify(tt.in); got != tt.want {
				t.Errorf("qualify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
