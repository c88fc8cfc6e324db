package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
	"github.com/swordbreaker/blade-bar/style"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0400
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00

	// Marker for absolute values given in pixel units. The value is held
	// in device units either way, the marker just preserves the unit for
	// printing.
	dimenUnitPX uint32 = 0x1000
)

// px is the length of a CSS pixel in device units (1px = 3/4pt).
var px = dimen.PT * 3 / 4

// Font-relative values are held as 16.16 fixed point scale factors until
// they get resolved against a font size.
const fixedOne = 65536

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| FontRel unit
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, d: dimen.DU(int32(n) * fixedOne), flags: dimenPercent}
}

// Pixels creates a CSS dimension from a pixel value.
func Pixels(f float64) DimenT {
	return DimenT{d: dimen.DU(math.Round(f * float64(px))), flags: dimenAbsolute | dimenUnitPX}
}

// Points creates a CSS dimension from a point value.
func Points(f float64) DimenT {
	return DimenT{d: dimen.DU(math.Round(f * float64(dimen.PT))), flags: dimenAbsolute}
}

// Em creates a font-relative CSS dimension.
func Em(scale float64) DimenT {
	return DimenT{d: dimen.DU(math.Round(scale * fixedOne)), flags: dimenEM}
}

// Rem creates a CSS dimension relative to the root font size.
func Rem(scale float64) DimenT {
	return DimenT{d: dimen.DU(math.Round(scale * fixedOne)), flags: dimenREM}
}

// ParseDimen returns an optional dimension type from a property string.
// It will never return an error, even with illegal input, but instead
// will then return an unset dimension.
func ParseDimen(p style.Property) DimenT {
	v := strings.TrimSpace(strings.ToLower(string(p)))
	switch v {
	case "":
		return DimenT{}
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	case "0":
		return JustDimen(0)
	case "thin": // border-width keywords
		return Pixels(1)
	case "medium":
		return Pixels(3)
	case "thick":
		return Pixels(5)
	}
	for _, unit := range []string{"rem", "em", "px", "pt", "%"} {
		if !strings.HasSuffix(v, unit) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, unit)), 64)
		if err != nil {
			tracer().Debugf("cannot parse dimension: %s", p)
			return DimenT{}
		}
		switch unit {
		case "rem":
			return Rem(f)
		case "em":
			return Em(f)
		case "px":
			return Pixels(f)
		case "pt":
			return Points(f)
		case "%":
			d := Percentage(FromInt(int(math.Round(f))))
			d.d = dimen.DU(math.Round(f * fixedOne))
			return d
		}
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		// no unit given, read as pixels
		return Pixels(f)
	}
	tracer().Debugf("cannot parse dimension: %s", p)
	return DimenT{}
}

// IsUnset returns true if d is unset.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// IsAbsolute returns true if d holds a fixed value.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative returns true if d holds a %-relative or font-relative value.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// Unit returns the unit of a dimension: "px", "pt", "em", "rem" or "%".
// Keywords and unset dimensions have no unit.
func (d DimenT) Unit() string {
	switch {
	case d.flags&relativeMask == dimenPercent:
		return "%"
	case d.flags&relativeMask == dimenEM:
		return "em"
	case d.flags&relativeMask == dimenREM:
		return "rem"
	case d.flags&dimenUnitPX > 0:
		return "px"
	case d.flags&kindMask == dimenAbsolute:
		return "pt"
	}
	return ""
}

// Resolve maps a dimension to device units: percentages resolve against
// base, font-relative values against fontsize and rootfontsize. Keyword
// and unset dimensions resolve to zero.
func (d DimenT) Resolve(base, fontsize, rootfontsize dimen.DU) dimen.DU {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return d.d
	case d.flags&relativeMask == dimenPercent:
		return dimen.DU(int64(base) * int64(d.d) / (fixedOne * 100))
	case d.flags&relativeMask == dimenEM:
		return dimen.DU(int64(fontsize) * int64(d.d) / fixedOne)
	case d.flags&relativeMask == dimenREM:
		return dimen.DU(int64(rootfontsize) * int64(d.d) / fixedOne)
	}
	return 0
}

// String returns the CSS text of a dimension.
func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	switch d.flags & relativeMask {
	case dimenPercent:
		return formatNum(d.d, fixedOne) + "%"
	case dimenEM:
		return formatNum(d.d, fixedOne) + "em"
	case dimenREM:
		return formatNum(d.d, fixedOne) + "rem"
	}
	if d.flags&kindMask == dimenAbsolute {
		if d.d == 0 {
			return "0"
		}
		if d.flags&dimenUnitPX > 0 {
			return formatNum(d.d, int64(px)) + "px"
		}
		return formatNum(d.d, int64(dimen.PT)) + "pt"
	}
	return "<unset dimension>"
}

// formatNum prints d scaled down by div, rounded to at most 4 decimal
// places, without trailing zeros.
func formatNum(d dimen.DU, div int64) string {
	f := float64(d) / float64(div)
	f = math.Round(f*10000) / 10000
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask > 0) && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		isPercent := m.dimen.flags&relativeMask == dimenPercent
		wantPercent := d.flags&relativeMask == dimenPercent
		if isPercent != wantPercent {
			return nil
		}
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

func (m *Matcher) FontRel(scale *float64) *Matcher {
	rel := m.dimen.flags & relativeMask
	if rel == dimenEM || rel == dimenREM {
		if scale != nil {
			*scale = float64(m.dimen.d) / fixedOne
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Unset      T
	Auto       T
	Inherit    T
	Initial    T
	Just       T
	Percentage T
	FontRel    T
	Default    T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags == dimenNone:
		return patterns.Unset
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	case m.dimen.flags&relativeMask == dimenPercent:
		return patterns.Percentage
	case m.dimen.flags&relativeMask == dimenEM,
		m.dimen.flags&relativeMask == dimenREM:
		return patterns.FontRel
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	if du != nil {
		*du = m.dimen.d
	}
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
