package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/swordbreaker/blade-bar/style"
)

// GradientStop is one color stop of a gradient.
type GradientStop struct {
	Color    ColorT
	Position DimenT // unset for evenly distributed stops
}

// Gradient is the value of a linear-gradient background image.
type Gradient struct {
	Angle float64 // degrees, clockwise, 0 pointing up
	To    string  // side or corner keyword, e.g. "bottom left"
	Stops []GradientStop
}

// Angles for the "to <side-or-corner>" direction syntax.
var sideAngles = map[string]float64{
	"top": 0, "right": 90, "bottom": 180, "left": 270,
	"top right": 45, "right top": 45,
	"bottom right": 135, "right bottom": 135,
	"bottom left": 225, "left bottom": 225,
	"top left": 315, "left top": 315,
}

// IsGradientValue checks whether a property value holds a linear gradient.
func IsGradientValue(p style.Property) bool {
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(string(p))), "linear-gradient(")
}

// ParseGradient reads a linear-gradient value like
//
//	linear-gradient(135deg, rgba(233, 69, 96, 0.8), rgba(83, 52, 131, 0.8))
//
// The direction may be given as an angle or with the "to <side-or-corner>"
// syntax; without one the gradient runs towards the bottom.
func ParseGradient(p style.Property) (Gradient, error) {
	v := strings.TrimSpace(string(p))
	if !IsGradientValue(p) || !strings.HasSuffix(v, ")") {
		return Gradient{}, fmt.Errorf("not a linear gradient: %s", p)
	}
	inner := v[strings.Index(v, "(")+1 : len(v)-1]
	groups, err := commaGroups(inner)
	if err != nil {
		return Gradient{}, err
	}
	g := Gradient{Angle: 180}
	start := 0
	if len(groups) > 0 && len(groups[0]) > 0 {
		first := groups[0]
		head := strings.ToLower(first[0])
		if len(first) == 1 && strings.HasSuffix(head, "deg") {
			angle, err := strconv.ParseFloat(strings.TrimSuffix(head, "deg"), 64)
			if err != nil {
				return Gradient{}, fmt.Errorf("malformed gradient angle: %s", first[0])
			}
			g.Angle = angle
			start = 1
		} else if head == "to" {
			side := strings.ToLower(strings.Join(first[1:], " "))
			angle, ok := sideAngles[side]
			if !ok {
				return Gradient{}, fmt.Errorf("malformed gradient direction: to %s", side)
			}
			g.To = side
			g.Angle = angle
			start = 1
		}
	}
	for _, fields := range groups[start:] {
		stop, err := parseGradientStop(fields)
		if err != nil {
			return Gradient{}, err
		}
		g.Stops = append(g.Stops, stop)
	}
	if len(g.Stops) < 2 {
		return Gradient{}, fmt.Errorf("gradient needs at least 2 color stops, has %d", len(g.Stops))
	}
	return g, nil
}

func parseGradientStop(fields []string) (GradientStop, error) {
	if len(fields) == 0 || len(fields) > 2 {
		return GradientStop{}, fmt.Errorf("malformed gradient stop: %s", strings.Join(fields, " "))
	}
	stop := GradientStop{Color: ParseColor(style.Property(fields[0]))}
	if stop.Color.IsUnset() {
		return GradientStop{}, fmt.Errorf("gradient stop without a color: %s", strings.Join(fields, " "))
	}
	if len(fields) == 2 {
		stop.Position = ParseDimen(style.Property(fields[1]))
		if stop.Position.IsUnset() {
			return GradientStop{}, fmt.Errorf("malformed gradient stop position: %s", fields[1])
		}
	}
	return stop, nil
}

// String returns the CSS text of a gradient.
func (g Gradient) String() string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	if g.To != "" {
		b.WriteString("to ")
		b.WriteString(g.To)
	} else {
		b.WriteString(strconv.FormatFloat(g.Angle, 'f', -1, 64))
		b.WriteString("deg")
	}
	for _, stop := range g.Stops {
		b.WriteString(", ")
		b.WriteString(stop.Color.String())
		if !stop.Position.IsUnset() {
			b.WriteString(" ")
			b.WriteString(stop.Position.String())
		}
	}
	b.WriteString(")")
	return b.String()
}
