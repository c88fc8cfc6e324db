package css

import (
	"fmt"
	"strings"

	"github.com/swordbreaker/blade-bar/style"
)

// Shadow is one layer of a box-shadow or text-shadow value.
type Shadow struct {
	OffsetX DimenT
	OffsetY DimenT
	Blur    DimenT
	Spread  DimenT
	Color   ColorT
	Inset   bool
}

// ParseShadowList reads the layers of a box-shadow or text-shadow value,
// for example
//
//	0 2px 8px rgba(0, 0, 0, 0.3), inset 0 1px rgba(255, 255, 255, 0.1)
//
// A value of "none" yields an empty list.
func ParseShadowList(p style.Property) ([]Shadow, error) {
	v := strings.TrimSpace(string(p))
	if v == "" || strings.EqualFold(v, "none") {
		return nil, nil
	}
	groups, err := commaGroups(v)
	if err != nil {
		return nil, err
	}
	shadows := make([]Shadow, 0, len(groups))
	for _, fields := range groups {
		sh, err := parseShadow(fields)
		if err != nil {
			return nil, err
		}
		shadows = append(shadows, sh)
	}
	return shadows, nil
}

func parseShadow(fields []string) (Shadow, error) {
	var sh Shadow
	var lengths []DimenT
	for _, f := range fields {
		if strings.EqualFold(f, "inset") {
			sh.Inset = true
			continue
		}
		if d := ParseDimen(style.Property(f)); !d.IsUnset() {
			lengths = append(lengths, d)
			continue
		}
		if c := ParseColor(style.Property(f)); !c.IsUnset() {
			if !sh.Color.IsUnset() {
				return Shadow{}, fmt.Errorf("shadow layer with more than one color")
			}
			sh.Color = c
			continue
		}
		return Shadow{}, fmt.Errorf("unexpected shadow component: %s", f)
	}
	if len(lengths) < 2 || len(lengths) > 4 {
		return Shadow{}, fmt.Errorf("shadow layer needs 2 to 4 lengths, has %d", len(lengths))
	}
	sh.OffsetX, sh.OffsetY = lengths[0], lengths[1]
	if len(lengths) > 2 {
		sh.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		sh.Spread = lengths[3]
	}
	if sh.Color.IsUnset() {
		sh.Color = CurrentColor()
	}
	return sh, nil
}

// String returns the CSS text of a shadow layer.
func (sh Shadow) String() string {
	var b strings.Builder
	if sh.Inset {
		b.WriteString("inset ")
	}
	b.WriteString(sh.OffsetX.String())
	b.WriteString(" ")
	b.WriteString(sh.OffsetY.String())
	if !sh.Blur.IsUnset() {
		b.WriteString(" ")
		b.WriteString(sh.Blur.String())
	}
	if !sh.Spread.IsUnset() {
		b.WriteString(" ")
		b.WriteString(sh.Spread.String())
	}
	b.WriteString(" ")
	b.WriteString(sh.Color.String())
	return b.String()
}

// ShadowListString returns the CSS text of a list of shadow layers.
func ShadowListString(shadows []Shadow) string {
	if len(shadows) == 0 {
		return "none"
	}
	layers := make([]string, len(shadows))
	for i, sh := range shadows {
		layers[i] = sh.String()
	}
	return strings.Join(layers, ", ")
}
