package theme

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/spf13/afero"
	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/style/cssom"
)

// Declaration is a single property setting within a theme rule.
type Declaration struct {
	Property  string
	Value     style.Property
	Important bool
}

func (d Declaration) String() string {
	s := d.Property + ": " + string(d.Value)
	if d.Important {
		s += " !important"
	}
	return s
}

// Rule pairs a widget selector with an ordered list of declarations.
// Declaration order is preserved from the source text.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Theme is an ordered sequence of rules, plus the named colors defined
// with @define-color. A theme is inert data: it does not match, cascade
// or paint anything itself. Rule order is significant, as the styling
// engine lets later rules of equal weight win.
type Theme struct {
	Name    string
	Rules   []Rule
	Palette Palette
}

// Palette is the set of named colors of a theme, defined with GTK's
// @define-color extension and referenced in values as "@name".
// Definition order is preserved.
type Palette struct {
	names  []string
	colors map[string]style.Property
}

// Define sets a named color. Re-defining a name overwrites its value and
// keeps its position.
func (p *Palette) Define(name string, value style.Property) {
	if p.colors == nil {
		p.colors = make(map[string]style.Property)
	}
	if _, ok := p.colors[name]; !ok {
		p.names = append(p.names, name)
	}
	p.colors[name] = value
}

// Color looks up a named color.
func (p Palette) Color(name string) (style.Property, bool) {
	v, ok := p.colors[name]
	return v, ok
}

// Names returns the defined color names in definition order.
func (p Palette) Names() []string {
	return p.names
}

// Len returns the number of defined colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// Resolve chases palette references in a value: "@accent" becomes the
// defined color, which may itself be a reference (GTK permits aliases).
// Values that are no reference, and references to undefined names, are
// returned unchanged.
func (p Palette) Resolve(value style.Property) style.Property {
	for range p.names {
		v := strings.TrimSpace(string(value))
		if !strings.HasPrefix(v, "@") {
			return value
		}
		next, ok := p.Color(strings.TrimPrefix(v, "@"))
		if !ok {
			return value
		}
		value = next
	}
	return value
}

// comments and @define-color lines are handled before the CSS parser
// gets to see the text.
var (
	cssComments  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	defineColors = regexp.MustCompile(`@define-color\s+([A-Za-z_][A-Za-z0-9_-]*)\s+([^;]+);`)
)

// Parse reads a theme from GTK-CSS text. @define-color lines are collected
// into the theme's palette, everything else must be parseable by the
// douceur CSS parser. Parse errors are returned, not swallowed; a theme
// that does not parse is no theme.
func Parse(name string, csstext string) (*Theme, error) {
	t := &Theme{Name: name}
	body := cssComments.ReplaceAllString(csstext, "")
	for _, def := range defineColors.FindAllStringSubmatch(body, -1) {
		t.Palette.Define(def[1], style.Property(strings.TrimSpace(def[2])))
	}
	body = defineColors.ReplaceAllString(body, "")
	sheet, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse theme %q: %w", name, err)
	}
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("theme %q: skipping at-rule %s", name, r.Name)
			continue
		}
		rule := Rule{Selector: normalizeSelector(r.Prelude)}
		for _, d := range r.Declarations {
			rule.Declarations = append(rule.Declarations, Declaration{
				Property:  strings.ToLower(strings.TrimSpace(d.Property)),
				Value:     style.Property(strings.TrimSpace(d.Value)),
				Important: d.Important,
			})
		}
		t.Rules = append(t.Rules, rule)
	}
	tracer().Debugf("parsed theme %q: %d rules, %d palette colors",
		name, len(t.Rules), t.Palette.Len())
	return t, nil
}

// Load reads a theme file. The theme name is derived from the file name,
// "dracula.css" becomes theme "dracula".
func Load(fsys afero.Fs, path string) (*Theme, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("cannot load theme: %w", err)
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(name, string(data))
}

// normalizeSelector collapses the whitespace of a selector to make equal
// selectors comparable: ".menu  button" and ".menu button" are the same
// selector.
func normalizeSelector(selector string) string {
	s := strings.Join(strings.Fields(selector), " ")
	return commaSpacing.ReplaceAllString(s, ", ")
}

var commaSpacing = regexp.MustCompile(`\s*,\s*`)

// ResolvedRule is the final declaration set for one selector, after
// merging repeated selectors and repeated properties under last-wins
// semantics.
type ResolvedRule struct {
	Selector     string
	Declarations []Declaration
}

// Resolved merges the theme's rule sequence per distinct selector: later
// declarations for the same property replace earlier ones, with important
// declarations only replaceable by important ones. The result has one
// rule per selector, in order of first appearance, with property keys
// unique within each rule.
//
// Merging happens on property keys as authored, a later "padding" rule
// replaces an earlier "padding" but not an earlier "padding-top".
// Shorthand expansion is the styling engine's job.
func (t *Theme) Resolved() []ResolvedRule {
	var order []string
	merged := make(map[string]*ResolvedRule)
	for _, r := range t.Rules {
		sel := normalizeSelector(r.Selector)
		rr, ok := merged[sel]
		if !ok {
			rr = &ResolvedRule{Selector: sel}
			merged[sel] = rr
			order = append(order, sel)
		}
		for _, d := range r.Declarations {
			rr.merge(d)
		}
	}
	resolved := make([]ResolvedRule, len(order))
	for i, sel := range order {
		resolved[i] = *merged[sel]
	}
	return resolved
}

func (rr *ResolvedRule) merge(d Declaration) {
	key := strings.ToLower(d.Property)
	for i, have := range rr.Declarations {
		if have.Property != key {
			continue
		}
		if d.Important || !have.Important {
			rr.Declarations[i] = Declaration{Property: key, Value: d.Value, Important: d.Important}
		}
		return
	}
	rr.Declarations = append(rr.Declarations, Declaration{Property: key, Value: d.Value, Important: d.Important})
}

// Declaration returns the resolved value for a property key.
func (rr ResolvedRule) Declaration(key string) (Declaration, bool) {
	key = strings.ToLower(key)
	for _, d := range rr.Declarations {
		if d.Property == key {
			return d, true
		}
	}
	return Declaration{}, false
}

// Equivalent compares two themes semantically: same palette, same
// sequence of distinct selectors, and for each selector the same
// resolved declaration set. Declaration order within a rule does not
// matter, rule order does (rules of equal specificity resolve by
// position). Parsing the serialization of a theme yields an equivalent
// theme.
func Equivalent(a, b *Theme) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !palettesEqual(a.Palette, b.Palette) {
		return false
	}
	ra, rb := a.Resolved(), b.Resolved()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i].Selector != rb[i].Selector {
			return false
		}
		if len(ra[i].Declarations) != len(rb[i].Declarations) {
			return false
		}
		for _, d := range ra[i].Declarations {
			dd, ok := rb[i].Declaration(d.Property)
			if !ok || dd.Value != d.Value || dd.Important != d.Important {
				return false
			}
		}
	}
	return true
}

func palettesEqual(a, b Palette) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, name := range a.Names() {
		va, _ := a.Color(name)
		vb, ok := b.Color(name)
		if !ok || va != vb {
			return false
		}
	}
	return true
}

// serialize writes the canonical CSS text of a theme: palette first, then
// the rules in sequence, declarations indented by four spaces.
func (t *Theme) serialize(b *bytes.Buffer) {
	for _, name := range t.Palette.Names() {
		v, _ := t.Palette.Color(name)
		fmt.Fprintf(b, "@define-color %s %s;\n", name, v)
	}
	if t.Palette.Len() > 0 && len(t.Rules) > 0 {
		b.WriteByte('\n')
	}
	for i, r := range t.Rules {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(normalizeSelector(r.Selector))
		b.WriteString(" {\n")
		for _, d := range r.Declarations {
			b.WriteString("    ")
			b.WriteString(d.String())
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
}

// String returns the canonical CSS text of the theme.
func (t *Theme) String() string {
	var b bytes.Buffer
	t.serialize(&b)
	return b.String()
}

// WriteTo writes the canonical CSS text of the theme.
//
// Interface io.WriterTo
func (t *Theme) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	t.serialize(&b)
	return b.WriteTo(w)
}

var _ io.WriterTo = &Theme{}

// --- Styling engine view ---------------------------------------------------

// Sheet is the styling engine's view of a theme.
//
// Interface cssom.StyleSheet
type Sheet struct {
	theme *Theme
}

// Sheet returns a stylesheet view suitable for cssom.AddStylesFor.
func (t *Theme) Sheet() *Sheet {
	return &Sheet{theme: t}
}

// Empty checks if the theme contains any rules.
//
// Interface cssom.StyleSheet
func (s *Sheet) Empty() bool {
	return s.theme == nil || len(s.theme.Rules) == 0
}

// Rules returns the theme's rules in sequence.
//
// Interface cssom.StyleSheet
func (s *Sheet) Rules() []cssom.Rule {
	if s.theme == nil {
		return nil
	}
	rules := make([]cssom.Rule, len(s.theme.Rules))
	for i, r := range s.theme.Rules {
		rules[i] = sheetRule{rule: r}
	}
	return rules
}

// AppendRules appends the rules of another stylesheet to the underlying
// theme.
//
// Interface cssom.StyleSheet
func (s *Sheet) AppendRules(other cssom.StyleSheet) {
	if s.theme == nil || other == nil {
		return
	}
	for _, r := range other.Rules() {
		rule := Rule{Selector: normalizeSelector(r.Selector())}
		for _, key := range r.Properties() {
			rule.Declarations = append(rule.Declarations, Declaration{
				Property:  key,
				Value:     r.Value(key),
				Important: r.IsImportant(key),
			})
		}
		s.theme.Rules = append(s.theme.Rules, rule)
	}
}

var _ cssom.StyleSheet = &Sheet{}

// sheetRule adapts one theme rule to the styling engine.
//
// Interface cssom.Rule
type sheetRule struct {
	rule Rule
}

func (sr sheetRule) Selector() string {
	return sr.rule.Selector
}

// Properties returns the rule's property keys, unique, in order of first
// appearance.
func (sr sheetRule) Properties() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, d := range sr.rule.Declarations {
		key := strings.ToLower(d.Property)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// find returns the winning declaration for a key: the last one, except
// that an important declaration is only superseded by a later important
// one.
func (sr sheetRule) find(key string) (Declaration, bool) {
	var winner Declaration
	found := false
	for _, d := range sr.rule.Declarations {
		if !strings.EqualFold(d.Property, key) {
			continue
		}
		if !found || d.Important || !winner.Important {
			winner = d
			found = true
		}
	}
	return winner, found
}

func (sr sheetRule) Value(key string) style.Property {
	if d, ok := sr.find(key); ok {
		return d.Value
	}
	return style.NullStyle
}

func (sr sheetRule) IsImportant(key string) bool {
	d, ok := sr.find(key)
	return ok && d.Important
}

var _ cssom.Rule = sheetRule{}
