package widgetdbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/style/cssom"
	"github.com/swordbreaker/blade-bar/style/cssom/douceuradapter"
	"github.com/swordbreaker/blade-bar/widget"
	"github.com/swordbreaker/blade-bar/widget/widgetdbg"
)

func styledBar(t *testing.T, csstext string) *widget.Node {
	t.Helper()
	sheet, err := douceuradapter.Parse(csstext)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	bar := widget.BladeBar()
	om := cssom.NewCSSOM(nil)
	if err := om.AddStylesFor(nil, sheet, cssom.Author); err != nil {
		t.Fatalf("cannot add stylesheet: %v", err)
	}
	if err := om.Style(bar); err != nil {
		t.Fatalf("cannot style widget tree: %v", err)
	}
	return bar
}

func TestTreeDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	dump := widgetdbg.Tree(widget.BladeBar())
	t.Logf("widget tree =\n%s", dump)
	for _, want := range []string{
		"window.main-window", "box.main-container", "label.cpu-label", `"BladeBar"`,
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected tree dump to contain %q, hasn't", want)
		}
	}
}

func TestStyleReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	bar := styledBar(t, `.main-container { padding: 0 10px; }`)
	boxes, err := widget.BelowWithClass(bar, "main-container")
	if err != nil || len(boxes) == 0 {
		t.Fatal("expected to find the container widget, haven't")
	}
	report := widgetdbg.StyleReport(boxes[0], []string{style.PGPadding})
	t.Logf("style report =\n%s", report)
	if !strings.Contains(report, "padding-right: 10px") {
		t.Errorf("expected report to show the computed padding, hasn't")
	}
	if widgetdbg.StyleReport(widget.BladeBar(), nil) == "" {
		t.Errorf("expected a report for an unstyled widget, haven't got one")
	}
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.widget")
	defer teardown()
	//
	bar := styledBar(t, `label { color: #e0e0e0; }`)
	var buf bytes.Buffer
	if err := widgetdbg.ToGraphViz(bar, &buf, nil); err != nil {
		t.Fatalf("cannot write DOT diagram: %v", err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") {
		t.Errorf("expected DOT output to open a digraph, hasn't")
	}
	if !strings.Contains(dot, "main-container") {
		t.Errorf("expected DOT output to show the container widget, doesn't")
	}
	if !strings.Contains(dot, "->") {
		t.Errorf("expected DOT output to contain edges, doesn't")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("expected DOT output to close the digraph, doesn't")
	}
}
