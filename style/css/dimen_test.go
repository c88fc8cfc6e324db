package css_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/style/css"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}

	em := css.Em(1.5)
	var scale float64
	switch m := em.Match(); m {
	case m.FontRel(&scale):
		t.Logf("scale = %f", scale)
	default:
		t.Errorf("expected Em(1.5) to be font-relative, isn't: %#v", em)
	}
	if scale != 1.5 {
		t.Errorf("expected scale of 1.5em to be 1.5, is %f", scale)
	}
}

func TestDimenParse(t *testing.T) {
	inputs := []struct {
		value string
		out   string
		unit  string
	}{
		{"10px", "10px", "px"},
		{"12pt", "12pt", "pt"},
		{"1.5em", "1.5em", "em"},
		{"2rem", "2rem", "rem"},
		{"50%", "50%", "%"},
		{"0", "0", "pt"},
		{"auto", "auto", ""},
		{"inherit", "inherit", ""},
		{"thin", "1px", "px"},
	}
	for _, input := range inputs {
		d := css.ParseDimen(style.Property(input.value))
		if d.IsUnset() {
			t.Errorf("expected %q to parse, hasn't", input.value)
			continue
		}
		if d.String() != input.out {
			t.Errorf("expected %q to print as %q, is %q", input.value, input.out, d.String())
		}
		if d.Unit() != input.unit {
			t.Errorf("expected unit of %q to be %q, is %q", input.value, input.unit, d.Unit())
		}
	}
	if d := css.ParseDimen("12blubb"); !d.IsUnset() {
		t.Errorf("expected '12blubb' to be unset, isn't: %v", d)
	}
	if d := css.ParseDimen("15"); d.String() != "15px" {
		t.Errorf("expected unit-less '15' to be read as pixels, is %v", d)
	}
}

func TestDimenResolve(t *testing.T) {
	half := css.ParseDimen("50%")
	if d := half.Resolve(dimen.PT*200, 0, 0); d != dimen.PT*100 {
		t.Errorf("expected 50%% of 200pt to be 100pt, is %s", d)
	}
	double := css.ParseDimen("2em")
	if d := double.Resolve(0, dimen.PT*10, 0); d != dimen.PT*20 {
		t.Errorf("expected 2em at font size 10pt to be 20pt, is %s", d)
	}
	root := css.ParseDimen("1.5rem")
	if d := root.Resolve(0, dimen.PT*10, dimen.PT*16); d != dimen.PT*24 {
		t.Errorf("expected 1.5rem at root font size 16pt to be 24pt, is %s", d)
	}
	if d := css.Auto().Resolve(dimen.PT*100, 0, 0); d != 0 {
		t.Errorf("expected dimen auto to resolve to 0, is %s", d)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	// now use it
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	result := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if result != 10 {
		t.Errorf("expected result == 10, isn't: %#v", result)
	}

	d := css.JustDimen(dimen.PT * 10)
	// now use it
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 20*dimen.PT, distance)
	}

	inh := css.Inherit()
	i := css.DimenPattern[string](inh)
	verdict := i.OneOf(css.DimenPatterns[string]{
		Just:    "just",
		Inherit: "inherit",
		Default: "other",
	})
	if verdict != "inherit" {
		t.Errorf("expected dimen inherit to select the inherit pattern, is %q", verdict)
	}
}
