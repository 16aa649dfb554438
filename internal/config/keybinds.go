package config

// Keybinds holds all keybinding configuration. Values are plain strings
// matching the tcell.EventKey.Name() format (e.g. "Rune[j]", "Ctrl+W", "Enter").
type Keybinds struct {
	Picker PickerKeybinds `toml:"picker"`
}

// PickerKeybinds holds keybindings for the interactive emoji picker.
type PickerKeybinds struct {
	Close        string `toml:"close"`
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Select       string `toml:"select"`
	Copy         string `toml:"copy"`
	NextStyle    string `toml:"next_style"`
	NextSkinTone string `toml:"next_skin_tone"`
}
