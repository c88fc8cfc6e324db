package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"regexp"

	"github.com/andybalholm/cascadia"
	"github.com/swordbreaker/blade-bar/widget"
)

// statePseudos matches the dynamic pseudo-classes themes may select on.
// Alternation in Go's regexp package is leftmost-first, so focus-within
// and focus-visible must precede focus.
var statePseudos = regexp.MustCompile(
	`:(hover|active|focus-within|focus-visible|focus|checked|disabled|selected|backdrop|indeterminate)\b`)

// RewriteStatePseudos rewrites dynamic pseudo-classes in a selector to
// attribute selectors, e.g. "button:hover" to "button[hover]". Widgets
// mirror their interaction states as element attributes (see package
// widget), and attribute presence is what gets matched. The rewrite
// leaves specificity untouched, as pseudo-classes and attributes both
// count on the class level.
func RewriteStatePseudos(selector string) string {
	return statePseudos.ReplaceAllString(selector, "[$1]")
}

// Selector is a compiled widget selector.
type Selector struct {
	source string
	sel    cascadia.Sel
}

// CompileSelector compiles a single widget selector. Dynamic
// pseudo-classes are rewritten to their attribute form beforehand.
func CompileSelector(selector string) (Selector, error) {
	sel, err := cascadia.Parse(RewriteStatePseudos(selector))
	if err != nil {
		return Selector{}, err
	}
	return Selector{source: selector, sel: sel}, nil
}

// CompileSelectorGroup compiles a comma separated selector group, as
// found in the prelude of a theme rule, into single selectors.
func CompileSelectorGroup(selectors string) ([]Selector, error) {
	group, err := cascadia.ParseGroup(RewriteStatePseudos(selectors))
	if err != nil {
		return nil, err
	}
	compiled := make([]Selector, len(group))
	for i, sel := range group {
		compiled[i] = Selector{source: selectors, sel: sel}
	}
	return compiled, nil
}

// Matches reports whether a widget matches the selector.
func (s Selector) Matches(w *widget.Node) bool {
	if s.sel == nil || w == nil || w.HTMLNode() == nil {
		return false
	}
	return s.sel.Match(w.HTMLNode())
}

// Specificity returns the specificity triple of a selector, as defined
// by the CSS selectors spec.
func (s Selector) Specificity() cascadia.Specificity {
	if s.sel == nil {
		return cascadia.Specificity{}
	}
	return s.sel.Specificity()
}

func (s Selector) String() string {
	return s.source
}
