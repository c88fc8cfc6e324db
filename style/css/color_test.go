package css_test

import (
	"image/color"
	"testing"

	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/style/css"
)

func TestColorBasic(t *testing.T) {
	c := css.ParseColor("#e94560")
	var rgba color.RGBA
	switch m := c.Match(); m {
	case m.Just(&rgba):
		t.Logf("rgba = %v", rgba)
	default:
		t.Errorf("expected #e94560 to be a concrete color, isn't: %#v", c)
	}
	if rgba.R != 0xe9 || rgba.G != 0x45 || rgba.B != 0x60 || rgba.A != 0xff {
		t.Errorf("expected #e94560 to decode channel-wise, hasn't: %v", rgba)
	}

	tr := css.ParseColor("transparent")
	switch m := tr.Match(); m {
	case m.IsKind(css.Transparent()):
		t.Logf("color is transparent")
	default:
		t.Errorf("expected 'transparent' to match the transparent keyword, isn't: %#v", tr)
	}

	pal := css.ParseColor("@accent")
	var name string
	switch m := pal.Match(); m {
	case m.Palette(&name):
		t.Logf("palette ref = %s", name)
	default:
		t.Errorf("expected @accent to be a palette reference, isn't: %#v", pal)
	}
	if name != "accent" {
		t.Errorf("expected palette reference name to be 'accent', is %q", name)
	}
}

func TestColorParse(t *testing.T) {
	inputs := []struct {
		value string
		out   string
	}{
		{"#fff", "#ffffff"},
		{"#1a1a2e", "#1a1a2e"},
		{"#00000040", "rgba(0, 0, 0, 0.25)"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"rgba(26, 26, 46, 0.95)", "rgba(26, 26, 46, 0.95)"},
		{"rgba(255, 255, 255, 0.1)", "rgba(255, 255, 255, 0.1)"},
		{"red", "#ff0000"},
		{"transparent", "transparent"},
		{"currentColor", "currentcolor"},
		{"@accent", "@accent"},
	}
	for _, input := range inputs {
		c := css.ParseColor(style.Property(input.value))
		if c.IsUnset() {
			t.Errorf("expected %q to parse, hasn't", input.value)
			continue
		}
		if c.String() != input.out {
			t.Errorf("expected %q to print as %q, is %q", input.value, input.out, c.String())
		}
	}
	for _, illegal := range []string{"#12345", "rgb(1, 2)", "rgba(1, 2, 3, 4, 5)", "blubb"} {
		if c := css.ParseColor(style.Property(illegal)); !c.IsUnset() {
			t.Errorf("expected %q to be unset, isn't: %v", illegal, c)
		}
	}
}

func TestColorPattern(t *testing.T) {
	c := css.ParseColor("rgba(233, 69, 96, 0.8)")
	var rgba color.RGBA
	m := css.ColorPattern[uint8](c)
	red := m.OneOf(css.ColorPatterns[uint8]{
		Just:        m.With(&rgba).Const(rgba.R),
		Transparent: 0,
		Default:     0,
	})
	if red != 233 {
		t.Errorf("expected red channel to be 233, is %d", red)
	}

	ref := css.ParseColor("@surface")
	p := css.ColorPattern[string](ref)
	verdict := p.OneOf(css.ColorPatterns[string]{
		Just:    "concrete",
		Palette: "palette",
		Default: "other",
	})
	if verdict != "palette" {
		t.Errorf("expected @surface to select the palette pattern, is %q", verdict)
	}
}
