package widget_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/swordbreaker/blade-bar/widget"
)

func TestWidgetKindAndClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	w := widget.New("button", "tray-button")
	if w.Kind() != "button" {
		t.Errorf("expected widget of kind button, is %q", w.Kind())
	}
	if !w.HasClass("tray-button") {
		t.Errorf("expected widget to carry class tray-button, hasn't")
	}
	w.AddClass("flat").AddClass("flat")
	if len(w.Classes()) != 2 {
		t.Errorf("expected widget to carry 2 classes, has %v", w.Classes())
	}
	w.RemoveClass("flat")
	if w.HasClass("flat") {
		t.Errorf("expected class flat to have been removed, isn't")
	}
}

func TestWidgetStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	w := widget.New("button", "notification-button")
	w.SetState(widget.StateHover|widget.StateActive, true)
	if !w.States().Contains(widget.StateHover) {
		t.Errorf("expected widget to be in hover state, isn't")
	}
	if !w.States().Contains(widget.StateActive) {
		t.Errorf("expected widget to be in active state, isn't")
	}
	hasAttr := false
	for _, a := range w.HTMLNode().Attr {
		if a.Key == "hover" {
			hasAttr = true
		}
	}
	if !hasAttr {
		t.Errorf("expected hover state to be mirrored as element attribute, isn't")
	}
	w.SetState(widget.StateHover, false)
	if w.States().Contains(widget.StateHover) {
		t.Errorf("expected hover state to be cleared, isn't")
	}
	for _, a := range w.HTMLNode().Attr {
		if a.Key == "hover" {
			t.Errorf("expected hover attribute to be removed, isn't")
		}
	}
	if w.String() != "button.notification-button:active" {
		t.Errorf("expected widget to print as button.notification-button:active, is %q", w)
	}
}

func TestWidgetStateParsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	st, err := widget.ParseState("focus-within")
	if err != nil {
		t.Fatalf("cannot parse state focus-within: %v", err)
	}
	if st != widget.StateFocusWithin {
		t.Errorf("expected state focus-within, is %s", st)
	}
	if _, err = widget.ParseState("blinking"); err == nil {
		t.Errorf("expected parsing of unknown state to fail, hasn't")
	}
	set := widget.StateHover | widget.StateChecked
	if set.FullString() != "hover checked" {
		t.Errorf("expected state set to print as 'hover checked', is %q", set.FullString())
	}
}

func TestWidgetAppendLinksElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	box := widget.New("box", "main-container")
	label := widget.New("label", "title-label").SetText("BladeBar")
	box.Append(label)
	if box.ChildCount() != 1 {
		t.Errorf("expected box to have 1 child widget, has %d", box.ChildCount())
	}
	if box.ChildWidget(0) != label {
		t.Errorf("expected child widget #0 to be the label, isn't")
	}
	if label.HTMLNode().Parent != box.HTMLNode() {
		t.Errorf("expected label element to be linked below box element, isn't")
	}
	if label.ParentWidget() != box {
		t.Errorf("expected parent widget of label to be the box, isn't")
	}
	label.Detach()
	if box.ChildCount() != 0 {
		t.Errorf("expected box to be empty after detach, has %d children", box.ChildCount())
	}
	if label.HTMLNode().Parent != nil {
		t.Errorf("expected label element to be unlinked after detach, isn't")
	}
}

func TestParseLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	layout := `<window class="main-window">
	  <box class="main-container">
	    <label class="title-label">BladeBar</label>
	  </box>
	</window>`
	root, err := widget.ParseLayout(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("cannot parse layout: %v", err)
	}
	if root.Kind() != "window" || !root.HasClass("main-window") {
		t.Errorf("expected root widget window.main-window, is %v", root)
	}
	box := root.ChildWidget(0)
	if box == nil || !box.HasClass("main-container") {
		t.Fatalf("expected main container below window, is %v", box)
	}
	label := box.ChildWidget(0)
	if label == nil || label.Text() != "BladeBar" {
		t.Errorf("expected title label with text BladeBar, is %v", label)
	}
}

func TestParseLayoutWithoutWidgets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	if _, err := widget.ParseLayout(strings.NewReader("just text")); err == nil {
		t.Errorf("expected layout without widget elements to be refused, isn't")
	}
}

func TestBladeBarReferenceTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	bar := widget.BladeBar()
	if bar.Kind() != "window" || !bar.HasClass("main-window") {
		t.Errorf("expected bar root to be window.main-window, is %v", bar)
	}
	main := bar.ChildWidget(0)
	if main == nil || !main.HasClass("main-container") {
		t.Fatalf("expected main container below bar window, is %v", main)
	}
	if main.ChildCount() != 5 {
		t.Errorf("expected 5 widgets in the main container, have %d", main.ChildCount())
	}
	cpu, err := widget.BelowWithClass(bar, "cpu-label")
	if err != nil {
		t.Fatalf("walking the bar tree failed: %v", err)
	}
	if len(cpu) != 1 {
		t.Fatalf("expected exactly one cpu label in the bar, have %d", len(cpu))
	}
	if cpu[0].Text() != "CPU: ---%" {
		t.Errorf("expected cpu label placeholder text, is %q", cpu[0].Text())
	}
}

func TestTrayMenuReferenceTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	popover := widget.TrayMenu("Open", "", "Quit")
	menu := popover.ChildWidget(0)
	if menu == nil || !menu.HasClass("menu") {
		t.Fatalf("expected menu box inside popover, is %v", menu)
	}
	if menu.ChildCount() != 3 {
		t.Fatalf("expected 3 menu entries, have %d", menu.ChildCount())
	}
	if menu.ChildWidget(1).Kind() != "separator" {
		t.Errorf("expected entry #1 to be a separator, is %v", menu.ChildWidget(1))
	}
	empty := widget.TrayMenu()
	placeholder := empty.ChildWidget(0).ChildWidget(0)
	if placeholder == nil || placeholder.Text() != "No menu items" {
		t.Errorf("expected placeholder label for empty menu, is %v", placeholder)
	}
}
