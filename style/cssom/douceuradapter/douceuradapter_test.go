package douceuradapter_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/swordbreaker/blade-bar/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

func TestAdapterRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`
	label { color: #ffffff; color: #e94560; }
	.menu { padding: 8px !important; }`)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules in stylesheet, have %d", len(rules))
	}
	if rules[0].Selector() != "label" {
		t.Errorf("expected selector of rule #0 to be label, is %q", rules[0].Selector())
	}
	if v := rules[0].Value("color"); v != "#e94560" {
		t.Errorf("expected last color declaration to win within the rule, is %q", v)
	}
	if !rules[1].IsImportant("padding") {
		t.Errorf("expected padding of .menu to be marked important, isn't")
	}
}

func TestAdapterSkipsAtRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`
	@media print {
	    label { color: #000000; }
	}
	label { color: #ff0000; }`)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected at-rules to be skipped, have %d rules", len(rules))
	}
	if v := rules[0].Value("color"); v != "#ff0000" {
		t.Errorf("expected color of the qualified rule, is %q", v)
	}
}

func TestAdapterAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.cssom")
	defer teardown()
	//
	first, err := douceuradapter.Parse(`label { color: #ffffff; }`)
	if err != nil {
		t.Fatal(err)
	}
	second, err := douceuradapter.Parse(`button { border-radius: 4px; }`)
	if err != nil {
		t.Fatal(err)
	}
	first.AppendRules(second)
	if len(first.Rules()) != 2 {
		t.Errorf("expected 2 rules after append, have %d", len(first.Rules()))
	}
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.cssom")
	defer teardown()
	//
	layout := `<html><head><style>label { color: #e94560; }</style></head>
	<body><window></window></body></html>`
	doc, err := html.Parse(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("cannot parse layout document: %v", err)
	}
	sheets := douceuradapter.ExtractStyleElements(doc)
	if len(sheets) != 1 {
		t.Fatalf("expected 1 embedded stylesheet, have %d", len(sheets))
	}
	if sheets[0].Empty() {
		t.Errorf("expected embedded stylesheet to carry rules, doesn't")
	}
}
