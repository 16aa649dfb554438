package fluent

import (
	"errors"
	"fmt"
)

// ErrUnknownSkinTone is returned when parsing a skin tone name that the
// Fluent emoji set does not provide.
var ErrUnknownSkinTone = errors.New("unknown skin tone")

// SkinTone is a skin tone variant. The zero value means no tone was requested.
type SkinTone uint8

const (
	SkinToneUnspecified SkinTone = iota
	SkinToneDefault
	SkinToneLight
	SkinToneMediumLight
	SkinToneMedium
	SkinToneMediumDark
	SkinToneDark
)

type skinToneForm struct {
	name  string
	path  string
	param string
}

var skinToneForms = map[SkinTone]skinToneForm{
	SkinToneDefault:     {"default", "Default", "default"},
	SkinToneLight:       {"light", "Light", "light"},
	SkinToneMediumLight: {"medium-light", "Medium-Light", "medium_light"},
	SkinToneMedium:      {"medium", "Medium", "medium"},
	SkinToneMediumDark:  {"medium-dark", "Medium-Dark", "medium_dark"},
	SkinToneDark:        {"dark", "Dark", "dark"},
}

// SkinTones returns every skin tone, default first.
func SkinTones() []SkinTone {
	return []SkinTone{
		SkinToneDefault,
		SkinToneLight,
		SkinToneMediumLight,
		SkinToneMedium,
		SkinToneMediumDark,
		SkinToneDark,
	}
}

// form falls back to the default tone for anything unknown.
func (t SkinTone) form() skinToneForm {
	if f, ok := skinToneForms[t]; ok {
		return f
	}
	return skinToneForms[SkinToneDefault]
}

// PathSegment returns the asset directory name, e.g. "Medium-Light".
func (t SkinTone) PathSegment() string { return t.form().path }

// Param returns the file name suffix, e.g. "medium_light".
func (t SkinTone) Param() string { return t.form().param }

// IsValid reports whether t is one of the six tones.
func (t SkinTone) IsValid() bool {
	_, ok := skinToneForms[t]
	return ok
}

func (t SkinTone) String() string {
	if t == SkinToneUnspecified {
		return ""
	}
	if f, ok := skinToneForms[t]; ok {
		return f.name
	}
	return fmt.Sprintf("SkinTone(%d)", uint8(t))
}

// ParseSkinTone parses a tone name such as "medium-light". Matching ignores
// case and accepts "_" in place of "-".
func ParseSkinTone(name string) (SkinTone, error) {
	key := normalizeName(name)
	for t, f := range skinToneForms {
		if f.name == key {
			return t, nil
		}
	}
	return SkinToneUnspecified, fmt.Errorf("%w: %q", ErrUnknownSkinTone, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t SkinTone) MarshalText() ([]byte, error) {
	if t != SkinToneUnspecified && !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSkinTone, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SkinTone) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = SkinToneUnspecified
		return nil
	}
	v, err := ParseSkinTone(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
