/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It wraps stylesheets parsed by the douceur CSS parser. Clients with plain
CSS text at hand will usually call Parse; clients holding a layout
document may harvest its embedded style elements with
ExtractStyleElements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to the documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS text into a stylesheet ready for the styling engine.
func Parse(csstext string) (*CSSStyles, error) {
	sheet, err := parser.Parse(csstext)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Wrap a douceur css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() { // re-wrap rules of a foreign implementation
		rule := &css.Rule{Kind: css.QualifiedRule, Prelude: r.Selector()}
		for _, key := range r.Properties() {
			rule.Declarations = append(rule.Declarations, &css.Declaration{
				Property:  key,
				Value:     string(r.Value(key)),
				Important: r.IsImportant(key),
			})
		}
		sheet.css.Rules = append(sheet.css.Rules, rule)
	}
}

// Rules returns all the style rules of a stylesheet. Only qualified
// rules take part in styling; at-rules are not exposed.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.TrimSpace(r.Prelude)
}

// Properties returns the property keys of a rule, e.g. "margin-top".
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, strings.ToLower(strings.TrimSpace(d.Property)))
	}
	return props
}

// Value returns the property value for a given key within this rule,
// e.g. "15px". With a key declared more than once in the rule, the last
// declaration wins.
func (r Rule) Value(key string) style.Property {
	value := style.Property("")
	for _, d := range r.Declarations {
		if strings.EqualFold(strings.TrimSpace(d.Property), key) {
			value = style.Property(strings.TrimSpace(d.Value))
		}
	}
	return value
}

// IsImportant returns true if a style key is marked as important ("!").
// With a key declared more than once in the rule, the last declaration
// wins.
func (r Rule) IsImportant(key string) bool {
	important := false
	for _, d := range r.Declarations {
		if strings.EqualFold(strings.TrimSpace(d.Property), key) {
			important = d.Important
		}
	}
	return important
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits the <head> and <body> elements of a layout
// document and searches for embedded <style>s. It returns the content of
// the style elements as stylesheets.
func ExtractStyleElements(layoutdoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, layoutdoc)
	body := findElement(atom.Body, layoutdoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			break
		}
		css = append(css, Wrap(c))
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
