package ircwire

import "testing"

func TestParseRGBExactForm(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"#FF0000", RGB{0xFF, 0, 0}},
		{"#00FF00", RGB{0, 0xFF, 0}},
		{"bogus", DefaultRGB},
		{"#FFF", DefaultRGB},
		{"", DefaultRGB},
	}
	for _, c := range cases {
		if got := ParseRGB(c.in); got != c.want {
			t.Errorf("ParseRGB(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsDark(t *testing.T) {
	if !(RGB{0x11, 0x11, 0x11}.IsDark()) {
		t.Errorf("#111111 should be dark")
	}
	if RGB{0xFF, 0xFF, 0xFF}.IsDark() {
		t.Errorf("white should not be dark")
	}
}

func TestParseTwitchColorNamed(t *testing.T) {
	cases := []string{"blue", "Blue", "BLUE"}
	for _, in := range cases {
		c := ParseTwitchColor(in)
		if c.Name() != "Blue" {
			t.Errorf("ParseTwitchColor(%q).Name() = %q, want Blue", in, c.Name())
		}
		if c.RGB() != (RGB{0x00, 0x00, 0xFF}) {
			t.Errorf("ParseTwitchColor(%q).RGB() = %v", in, c.RGB())
		}
	}

	spellings := []string{"blue violet", "blue_violet", "blueviolet"}
	for _, in := range spellings {
		if got := ParseTwitchColor(in).Name(); got != "Blue Violet" {
			t.Errorf("ParseTwitchColor(%q).Name() = %q, want Blue Violet", in, got)
		}
	}
}

func TestParseTwitchColorTurboFallback(t *testing.T) {
	c := ParseTwitchColor("#123456")
	if c.Name() != "" {
		t.Errorf("expected Turbo variant, got named %q", c.Name())
	}
	if c.RGB() != (RGB{0x12, 0x34, 0x56}) {
		t.Errorf("RGB = %v", c.RGB())
	}
}
