package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitCompoundPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("padding", "0 10px")
	if err != nil {
		t.Fatalf("cannot split 'padding: 0 10px': %v", err)
	}
	expect := map[string]Property{
		"padding-top":    "0",
		"padding-right":  "10px",
		"padding-bottom": "0",
		"padding-left":   "10px",
	}
	if len(kv) != 4 {
		t.Fatalf("expected 4 padding components, got %d", len(kv))
	}
	for _, item := range kv {
		if expect[item.Key] != item.Value {
			t.Errorf("expected %s to be %s, is %s", item.Key, expect[item.Key], item.Value)
		}
	}
}

func TestSplitCompoundBorderRadius(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("border-radius", "8px")
	if err != nil {
		t.Fatalf("cannot split 'border-radius: 8px': %v", err)
	}
	if len(kv) != 4 {
		t.Fatalf("expected 4 corner radii, got %d", len(kv))
	}
	corners := map[string]bool{}
	for _, item := range kv {
		if item.Value != "8px" {
			t.Errorf("expected %s to be 8px, is %s", item.Key, item.Value)
		}
		corners[item.Key] = true
	}
	if !corners["border-top-left-radius"] || !corners["border-bottom-right-radius"] {
		t.Errorf("expected radii for all four corners, got %v", corners)
	}
}

func TestSplitCompoundBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("border", "1px solid rgba(255, 255, 255, 0.1)")
	if err != nil {
		t.Fatalf("cannot split border shorthand: %v", err)
	}
	if len(kv) != 12 { // 4 sides x width/style/color
		t.Fatalf("expected 12 border components, got %d", len(kv))
	}
	m := map[string]Property{}
	for _, item := range kv {
		m[item.Key] = item.Value
	}
	if m["border-top-width"] != "1px" {
		t.Errorf("expected border-top-width to be 1px, is %s", m["border-top-width"])
	}
	if m["border-left-style"] != "solid" {
		t.Errorf("expected border-left-style to be solid, is %s", m["border-left-style"])
	}
	if m["border-bottom-color"] != "rgba(255, 255, 255, 0.1)" {
		t.Errorf("expected border-bottom-color to keep rgba() intact, is %s", m["border-bottom-color"])
	}
}

func TestSplitCompoundTransition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("transition", "background-color 0.2s ease-in-out")
	if err != nil {
		t.Fatalf("cannot split transition shorthand: %v", err)
	}
	m := map[string]Property{}
	for _, item := range kv {
		m[item.Key] = item.Value
	}
	if m["transition-property"] != "background-color" {
		t.Errorf("expected transition-property to be background-color, is %s", m["transition-property"])
	}
	if m["transition-duration"] != "0.2s" {
		t.Errorf("expected transition-duration to be 0.2s, is %s", m["transition-duration"])
	}
	if m["transition-timing-function"] != "ease-in-out" {
		t.Errorf("expected timing function to be ease-in-out, is %s", m["transition-timing-function"])
	}
	if m["transition-delay"] != "0s" {
		t.Errorf("expected default delay 0s, is %s", m["transition-delay"])
	}
}

func TestSplitCompoundBackground(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("background", "linear-gradient(135deg, #667eea 0%, #764ba2 100%)")
	if err != nil {
		t.Fatalf("cannot split background shorthand: %v", err)
	}
	if len(kv) != 1 || kv[0].Key != "background-image" {
		t.Errorf("expected gradient to land in background-image, got %v", kv)
	}
	kv, _ = SplitCompoundProperty("background", "#1a1a2e")
	if len(kv) != 1 || kv[0].Key != "background-color" {
		t.Errorf("expected color to land in background-color, got %v", kv)
	}
}

func TestSplitCompoundUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	if _, err := SplitCompoundProperty("color", "white"); err == nil {
		t.Error("expected split of non-compound property to fail, didn't")
	}
}

func TestPropertyGroupCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	parent := NewPropertyGroup(PGColor)
	parent.Set("color", "white")
	child := NewPropertyGroup(PGColor)
	child.Parent = parent
	child.Set("background-color", "#1a1a2e")
	group := child.Cascade("color")
	if group != parent {
		t.Errorf("expected cascade to find 'color' in parent group, found %v", group)
	}
	if group = child.Cascade("box-shadow"); group != nil {
		t.Errorf("expected cascade for unknown key to come up empty, found %v", group)
	}
}

func TestPropertyMapAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("margin-top", "2px")
	pmap.Add("color", "#e94560")
	if pmap.Size() != 2 {
		t.Errorf("expected property map to hold 2 groups, holds %d", pmap.Size())
	}
	if color, ok := pmap.Property("color"); !ok || color != "#e94560" {
		t.Errorf("expected color property #e94560, got %q", color)
	}
	if group := pmap.Group(PGMargins); group == nil || !group.IsSet("margin-top") {
		t.Error("expected Margins group with margin-top set, haven't")
	}
}

func TestDefaultPropertyValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.style")
	defer teardown()
	//
	defaults := InitializeDefaultPropertyValues(nil)
	if defaults.Size() == 0 {
		t.Fatal("expected non-empty default property map")
	}
	if bg, ok := defaults.Property("background-color"); !ok || bg != "transparent" {
		t.Errorf("expected default background-color to be transparent, is %q", bg)
	}
	if ff, ok := defaults.Property("font-family"); !ok || ff.IsEmpty() {
		t.Error("expected a default font-family, haven't")
	}
}

func TestIsCascading(t *testing.T) {
	if !IsCascading("color") {
		t.Error("expected 'color' to inherit, doesn't")
	}
	if !IsCascading("font-size") {
		t.Error("expected 'font-size' to inherit, doesn't")
	}
	if IsCascading("background-color") {
		t.Error("expected 'background-color' not to inherit, does")
	}
	if IsCascading("box-shadow") {
		t.Error("expected 'box-shadow' not to inherit, does")
	}
}
