package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"errors"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/tree"
	"github.com/swordbreaker/blade-bar/widget"
)

// PropertySource denotes where a stylesheet stems from. The cascade
// ranks sources: user agent defaults first, then user settings, then
// author (theme) rules.
type PropertySource uint8

// Stylesheet sources, in ascending order of cascade priority.
const (
	UserAgent PropertySource = iota + 1
	User
	Author
)

func (source PropertySource) String() string {
	switch source {
	case UserAgent:
		return "user-agent"
	case User:
		return "user"
	case Author:
		return "author"
	}
	return "unknown"
}

// ErrIllegalSource flags a stylesheet source outside the known range.
var ErrIllegalSource = errors.New("stylesheet source not known")

// ErrNoWidgetTree flags a styling request without a widget tree.
var ErrNoWidgetTree = errors.New("cannot style an empty widget tree")

// CSSOM holds the stylesheets relevant for styling the bar, compiled
// into a flat rule list. Stylesheets are added with AddStylesFor and
// applied to widget trees with Style.
type CSSOM struct {
	sheets            []styleSheetEntry
	compiled          []compiledRule
	defaultProperties []style.KeyValue
}

type styleSheetEntry struct {
	sheet  StyleSheet
	scope  *widget.Node
	source PropertySource
}

// compiledRule is one selector of one rule, bound to the rule's expanded
// declarations.
type compiledRule struct {
	selector    Selector
	specificity cascadia.Specificity
	source      PropertySource
	seq         int // rule position over all added stylesheets
	scope       *widget.Node
	normal      []style.KeyValue
	important   []style.KeyValue
}

// NewCSSOM creates an empty CSSOM. Clients may pass default property
// values to be set at the root of every styled widget tree, overriding
// the built-in widget defaults; nil is fine.
func NewCSSOM(defaults []style.KeyValue) CSSOM {
	return CSSOM{
		defaultProperties: defaults,
	}
}

// AddStylesFor adds a stylesheet to the CSSOM. A non-nil scope restricts
// the stylesheet to widgets at or below scope. source ranks the
// stylesheet within the cascade; a zero source defaults to Author.
func (om *CSSOM) AddStylesFor(scope *widget.Node, sheet StyleSheet, source PropertySource) error {
	if sheet == nil || sheet.Empty() {
		return nil // nothing to do
	}
	if source == 0 {
		source = Author
	}
	if source > Author {
		return ErrIllegalSource
	}
	om.sheets = append(om.sheets, styleSheetEntry{sheet: sheet, scope: scope, source: source})
	om.compiled = nil // force re-compilation
	return nil
}

// compile flattens the added stylesheets into compiled rules: selectors
// rewritten and parsed, shorthand properties expanded. Rules with
// malformed selectors are dropped, which is what CSS error recovery
// prescribes.
func (om *CSSOM) compile() {
	if om.compiled != nil {
		return
	}
	om.compiled = make([]compiledRule, 0, 64)
	seq := 0
	for _, entry := range om.sheets {
		for _, rule := range entry.sheet.Rules() {
			seq++
			selectors, err := CompileSelectorGroup(rule.Selector())
			if err != nil {
				tracer().Errorf("dropping rule %q: %v", rule.Selector(), err)
				continue
			}
			normal, important := expandDeclarations(rule)
			for _, sel := range selectors {
				om.compiled = append(om.compiled, compiledRule{
					selector:    sel,
					specificity: sel.Specificity(),
					source:      entry.source,
					seq:         seq,
					scope:       entry.scope,
					normal:      normal,
					important:   important,
				})
			}
		}
	}
	tracer().Infof("CSSOM compiled %d selectors from %d stylesheets", len(om.compiled), len(om.sheets))
}

// expandDeclarations collects the declarations of a rule, splitting
// shorthand properties like "padding" into their atomic components.
func expandDeclarations(rule Rule) (normal []style.KeyValue, important []style.KeyValue) {
	for _, key := range rule.Properties() {
		expanded := expandDeclaration(key, rule.Value(key))
		if rule.IsImportant(key) {
			important = append(important, expanded...)
		} else {
			normal = append(normal, expanded...)
		}
	}
	return
}

func expandDeclaration(key string, value style.Property) []style.KeyValue {
	if style.IsCompound(key) {
		kvs, err := style.SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Infof("declaration '%s: %s' not split: %v", key, value, err)
		} else {
			return kvs
		}
	}
	return []style.KeyValue{{Key: key, Value: value}}
}

// Style styles a widget tree rooted at root: the style properties of
// every widget are computed from the added stylesheets and attached to
// the widget (see widget.Node.Styles).
//
// Style does not mutate the stylesheets and may be called repeatedly.
func (om *CSSOM) Style(root *widget.Node) error {
	if root == nil {
		return ErrNoWidgetTree
	}
	om.compile()
	future := root.Walk().TopDown(om.styleWidget).Promise()
	if _, err := future(); err != nil {
		return err
	}
	return nil
}

// Restyle recomputes the styles of a widget tree, picking up changed
// widget states and added stylesheets.
//
// TODO restyle incrementally, starting at the widget whose state changed.
func (om *CSSOM) Restyle(root *widget.Node) error {
	return om.Style(root)
}

// styleWidget is a tree action: it computes and attaches the style
// property map for a single widget. Safe for concurrent tree walking, as
// the compiled rules are read-only during a walk.
func (om *CSSOM) styleWidget(n *tree.Node[*widget.Node], parent *tree.Node[*widget.Node],
	position int) (*tree.Node[*widget.Node], error) {
	//
	w := widget.FromTree(n)
	if w == nil {
		return nil, nil
	}
	var pmap *style.PropertyMap
	if w.ParentWidget() == nil {
		pmap = style.InitializeDefaultPropertyValues(om.defaultProperties)
	} else {
		pmap = style.NewPropertyMap()
	}
	matches := om.matchesFor(w)
	applyMatches(pmap, matches, w)
	w.SetStyles(pmap)
	tracer().Debugf("styled %v from %d matching rules", w, len(matches))
	return n, nil
}

// matchesFor collects the compiled rules matching a widget, in ascending
// cascade order: source first, then specificity, rule position last. The
// stable sort preserves rule position for rules of equal weight, which
// is what makes the last rule win.
func (om *CSSOM) matchesFor(w *widget.Node) []compiledRule {
	var matches []compiledRule
	for _, r := range om.compiled {
		if r.scope != nil && !inScope(w, r.scope) {
			continue
		}
		if r.selector.Matches(w) {
			matches = append(matches, r)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].source != matches[j].source {
			return matches[i].source < matches[j].source
		}
		return matches[i].specificity.Less(matches[j].specificity)
	})
	return matches
}

// inScope reports whether widget w is scope itself or sits below it.
func inScope(w *widget.Node, scope *widget.Node) bool {
	for ; w != nil; w = w.ParentWidget() {
		if w == scope {
			return true
		}
	}
	return false
}

// applyMatches layers the declarations of the matching rules onto a
// property map. Normal declarations go first, in cascade order; the
// !important declarations follow in a second pass, so that they beat
// every normal declaration. An inline style attribute of the widget
// slots in after the normal declarations, its own !important
// declarations after everything else.
func applyMatches(pmap *style.PropertyMap, matches []compiledRule, w *widget.Node) {
	for _, m := range matches {
		for _, kv := range m.normal {
			pmap.Add(kv.Key, kv.Value)
		}
	}
	inlineNormal, inlineImportant := inlineDeclarations(w)
	for _, kv := range inlineNormal {
		pmap.Add(kv.Key, kv.Value)
	}
	for _, m := range matches {
		for _, kv := range m.important {
			pmap.Add(kv.Key, kv.Value)
		}
	}
	for _, kv := range inlineImportant {
		pmap.Add(kv.Key, kv.Value)
	}
}

// inlineDeclarations parses the style attribute of a widget, if it has
// one. Layout documents may attach inline styles to single widgets, just
// like HTML documents may.
func inlineDeclarations(w *widget.Node) (normal []style.KeyValue, important []style.KeyValue) {
	h := w.HTMLNode()
	if h == nil {
		return nil, nil
	}
	inline := ""
	for _, a := range h.Attr {
		if a.Key == "style" {
			inline = a.Val
		}
	}
	if inline == "" {
		return nil, nil
	}
	declarations, err := parser.ParseDeclarations(inline)
	if err != nil {
		tracer().Errorf("dropping inline style of %v: %v", w, err)
		return nil, nil
	}
	for _, d := range declarations {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		expanded := expandDeclaration(key, style.Property(strings.TrimSpace(d.Value)))
		if d.Important {
			important = append(important, expanded...)
		} else {
			normal = append(normal, expanded...)
		}
	}
	return
}
