package css

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/swordbreaker/blade-bar/style"
)

// colorKind is an enum type for the flavors of CSS color values.
type colorKind uint16

const (
	colorUnset colorKind = iota
	colorAbsolute
	colorTransparent
	colorCurrent
	colorInherit
	colorInitial
	colorPalette
)

// ColorT is an option type for CSS colors.
type ColorT struct {
	rgba color.RGBA
	ref  string // palette reference for kind colorPalette
	kind colorKind
}

/*
type ColorT
	= Unset
	| JustColor rgba
	| Transparent
	| CurrentColor
	| InheritedColor
	| InitialColor
	| PaletteRef name
*/

// JustColor creates a CSS color with a concrete RGBA value.
func JustColor(c color.RGBA) ColorT {
	return ColorT{rgba: c, kind: colorAbsolute}
}

// Transparent creates the CSS color `transparent`.
func Transparent() ColorT {
	return ColorT{kind: colorTransparent}
}

// CurrentColor creates the CSS color `currentcolor`, which resolves to
// the widget's text color.
func CurrentColor() ColorT {
	return ColorT{kind: colorCurrent}
}

// InheritedColor creates a CSS color of value `inherit`.
func InheritedColor() ColorT {
	return ColorT{kind: colorInherit}
}

// InitialColor creates a CSS color of value `initial`.
func InitialColor() ColorT {
	return ColorT{kind: colorInitial}
}

// PaletteRef creates a named color reference, to be resolved against a
// theme palette (see the "@define-color" at-rule).
func PaletteRef(name string) ColorT {
	return ColorT{ref: name, kind: colorPalette}
}

// The basic CSS color keywords, plus a few names which keep turning up
// in bar themes.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"maroon":  {0x80, 0x00, 0x00, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"fuchsia": {0xff, 0x00, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"aqua":    {0x00, 0xff, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
	"gold":    {0xff, 0xd7, 0x00, 0xff},
}

// ParseColor returns an optional color type from a property string.
// It will never return an error, even with illegal input, but instead
// will then return an unset color.
func ParseColor(p style.Property) ColorT {
	v := strings.TrimSpace(strings.ToLower(string(p)))
	switch v {
	case "":
		return ColorT{}
	case "transparent":
		return Transparent()
	case "currentcolor":
		return CurrentColor()
	case "inherit":
		return InheritedColor()
	case "initial":
		return InitialColor()
	}
	if strings.HasPrefix(v, "@") {
		return PaletteRef(strings.TrimPrefix(v, "@"))
	}
	if strings.HasPrefix(v, "#") {
		if rgba, ok := parseHexColor(v); ok {
			return JustColor(rgba)
		}
		tracer().Debugf("cannot parse color: %s", p)
		return ColorT{}
	}
	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		if rgba, ok := parseRGBFunction(v); ok {
			return JustColor(rgba)
		}
		tracer().Debugf("cannot parse color: %s", p)
		return ColorT{}
	}
	if rgba, ok := namedColors[v]; ok {
		return JustColor(rgba)
	}
	tracer().Debugf("cannot parse color: %s", p)
	return ColorT{}
}

func parseHexColor(v string) (color.RGBA, bool) {
	hex := strings.TrimPrefix(v, "#")
	switch len(hex) {
	case 3:
		hex = expandNibbles(hex) + "ff"
	case 4:
		hex = expandNibbles(hex)
	case 6:
		hex = hex + "ff"
	case 8:
		// noop
	default:
		return color.RGBA{}, false
	}
	var channels [4]uint8
	for i := 0; i < 4; i++ {
		n, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		channels[i] = uint8(n)
	}
	return color.RGBA{channels[0], channels[1], channels[2], channels[3]}, true
}

// expandNibbles doubles every hex digit, mapping "fa0" to "ffaa00".
func expandNibbles(hex string) string {
	var b strings.Builder
	for _, r := range hex {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return b.String()
}

func parseRGBFunction(v string) (color.RGBA, bool) {
	open := strings.Index(v, "(")
	if open < 0 || !strings.HasSuffix(v, ")") {
		return color.RGBA{}, false
	}
	args := strings.Split(v[open+1:len(v)-1], ",")
	if len(args) < 3 || len(args) > 4 {
		return color.RGBA{}, false
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		c, ok := parseColorChannel(strings.TrimSpace(args[i]))
		if !ok {
			return color.RGBA{}, false
		}
		channels[i] = c
	}
	alpha := uint8(0xff)
	if len(args) == 4 {
		a, ok := parseAlphaChannel(strings.TrimSpace(args[3]))
		if !ok {
			return color.RGBA{}, false
		}
		alpha = a
	}
	return color.RGBA{channels[0], channels[1], channels[2], alpha}, true
}

// parseColorChannel reads a color coordinate, either as an integer 0–255
// or as a percentage.
func parseColorChannel(arg string) (uint8, bool) {
	if strings.HasSuffix(arg, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampChannel(math.Round(f * 255 / 100)), true
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, false
	}
	return clampChannel(math.Round(f)), true
}

// parseAlphaChannel reads an alpha coordinate, either as a number 0–1 or
// as a percentage.
func parseAlphaChannel(arg string) (uint8, bool) {
	if strings.HasSuffix(arg, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampChannel(math.Round(f * 255 / 100)), true
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, false
	}
	return clampChannel(math.Round(f * 255)), true
}

func clampChannel(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

// IsUnset returns true if c is unset.
func (c ColorT) IsUnset() bool {
	return c.kind == colorUnset
}

// RGBA returns the concrete color value of c. The second return value is
// false for keyword colors and palette references.
func (c ColorT) RGBA() (color.RGBA, bool) {
	if c.kind == colorAbsolute {
		return c.rgba, true
	}
	return color.RGBA{}, false
}

// Ref returns the palette name of a color reference, e.g. "accent" for
// the value "@accent".
func (c ColorT) Ref() string {
	return c.ref
}

// String returns the CSS text of a color. Concrete colors print as
// "#rrggbb", or in rgba() form if translucent.
func (c ColorT) String() string {
	switch c.kind {
	case colorTransparent:
		return "transparent"
	case colorCurrent:
		return "currentcolor"
	case colorInherit:
		return "inherit"
	case colorInitial:
		return "initial"
	case colorPalette:
		return "@" + c.ref
	case colorAbsolute:
		if c.rgba.A == 0xff {
			return "#" + hexByte(c.rgba.R) + hexByte(c.rgba.G) + hexByte(c.rgba.B)
		}
		a := math.Round(float64(c.rgba.A)/255*100) / 100
		return "rgba(" + strconv.Itoa(int(c.rgba.R)) + ", " + strconv.Itoa(int(c.rgba.G)) +
			", " + strconv.Itoa(int(c.rgba.B)) + ", " + strconv.FormatFloat(a, 'f', -1, 64) + ")"
	}
	return "<unset color>"
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}

// ---------------------------------------------------------------------------

func (c ColorT) Match() *CMatcher {
	return &CMatcher{color: c}
}

type CMatcher struct {
	color ColorT
}

func (m *CMatcher) IsKind(c ColorT) *CMatcher {
	if m.color.kind == c.kind {
		return m
	}
	return nil
}

func (m *CMatcher) Just(rgba *color.RGBA) *CMatcher {
	if m.color.kind == colorAbsolute {
		if rgba != nil {
			*rgba = m.color.rgba
		}
		return m
	}
	return nil
}

func (m *CMatcher) Palette(name *string) *CMatcher {
	if m.color.kind == colorPalette {
		if name != nil {
			*name = m.color.ref
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type ColorPatterns[T any] struct {
	Unset       T
	Just        T
	Transparent T
	Current     T
	Inherit     T
	Initial     T
	Palette     T
	Default     T
}

func ColorPattern[T any](c ColorT) *CMatchExpr[T] {
	return &CMatchExpr[T]{color: c}
}

// CMatchExpr is part of pattern matching for ColorT types and intended to
// be instantiated using `ColorPattern()` only.
type CMatchExpr[T any] struct {
	color ColorT
}

func (m *CMatchExpr[T]) OneOf(patterns ColorPatterns[T]) T {
	switch m.color.kind {
	case colorUnset:
		return patterns.Unset
	case colorAbsolute:
		return patterns.Just
	case colorTransparent:
		return patterns.Transparent
	case colorCurrent:
		return patterns.Current
	case colorInherit:
		return patterns.Inherit
	case colorInitial:
		return patterns.Initial
	case colorPalette:
		return patterns.Palette
	}
	return patterns.Default
}

func (m *CMatchExpr[T]) With(rgba *color.RGBA) *CMatchExpr[T] {
	if rgba != nil {
		*rgba = m.color.rgba
	}
	return m
}

func (m *CMatchExpr[T]) Const(x T) T {
	return x
}
