package theme

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/style/css"
	"github.com/swordbreaker/blade-bar/style/cssom"
	"github.com/swordbreaker/blade-bar/widget"
)

// Severity grades lint problems. An Error means the renderer will drop or
// misread the offending rule, a Warning flags authoring inconsistencies.
type Severity uint8

const (
	Warning Severity = iota + 1
	Error
)

func (sev Severity) String() string {
	switch sev {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Problem is a single lint finding, located by rule index and, where it
// concerns a declaration, property key.
type Problem struct {
	Rule     int // index into the theme's rule sequence
	Selector string
	Property string
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	if p.Property != "" {
		return fmt.Sprintf("%s: rule %d (%s), %s: %s", p.Severity, p.Rule, p.Selector, p.Property, p.Message)
	}
	return fmt.Sprintf("%s: rule %d (%s): %s", p.Severity, p.Rule, p.Selector, p.Message)
}

// Validate statically checks a theme without applying it: every selector
// must compile under the supported grammar, every declaration value must
// parse under its property's value grammar, no value may be empty.
// Duplicate selectors and unknown properties are reported as warnings.
// The rule sequence itself is never modified; a theme with problems is
// still applicable (the engine drops what it cannot use).
func Validate(t *Theme) []Problem {
	if t == nil {
		return nil
	}
	var problems []Problem
	firstUse := make(map[string]int)
	for i, r := range t.Rules {
		sel := normalizeSelector(r.Selector)
		if sel == "" {
			problems = append(problems, Problem{
				Rule: i, Severity: Error, Message: "rule without a selector",
			})
		} else {
			if _, err := cssom.CompileSelectorGroup(sel); err != nil {
				problems = append(problems, Problem{
					Rule: i, Selector: sel, Severity: Error,
					Message: fmt.Sprintf("unsupported selector: %v", err),
				})
			}
			if first, dup := firstUse[sel]; dup {
				problems = append(problems, Problem{
					Rule: i, Selector: sel, Severity: Warning,
					Message: fmt.Sprintf("selector repeats rule %d, later declarations win", first),
				})
			} else {
				firstUse[sel] = i
			}
		}
		for _, d := range r.Declarations {
			problems = append(problems, checkDeclaration(t, i, sel, d)...)
		}
	}
	return problems
}

// borderStyles are the keywords legal in border-style positions.
var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true,
	"solid": true, "double": true, "groove": true, "ridge": true,
	"inset": true, "outset": true,
}

// bareNumber matches a length value without a unit. Only "0" may omit
// its unit.
var bareNumber = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)$`)

func checkDeclaration(t *Theme, rule int, sel string, d Declaration) []Problem {
	problem := func(sev Severity, format string, args ...interface{}) []Problem {
		return []Problem{{
			Rule: rule, Selector: sel, Property: d.Property,
			Severity: sev, Message: fmt.Sprintf(format, args...),
		}}
	}
	value := strings.TrimSpace(string(d.Value))
	if value == "" {
		return problem(Error, "declaration without a value")
	}
	if !style.KnownPropertyKey(d.Property) {
		return problem(Warning, "unknown property")
	}
	switch strings.ToLower(value) {
	case "inherit", "initial", "unset":
		return nil // global keywords are legal for every property
	}

	var bad []string
	switch key := d.Property; {
	case key == "box-shadow" || key == "text-shadow":
		shadows, err := css.ParseShadowList(d.Value)
		if err != nil {
			return problem(Error, "malformed shadow value: %v", err)
		}
		for _, sh := range shadows {
			bad = append(bad, missingRef(t, sh.Color)...)
		}
	case key == "transition":
		if _, err := css.ParseTransitionList(d.Value); err != nil {
			return problem(Error, "malformed transition value: %v", err)
		}
	case key == "transition-duration" || key == "transition-delay":
		if _, ok := css.ParseDuration(value); !ok {
			return problem(Error, "not a time value: %s", value)
		}
	case key == "transition-timing-function":
		if !css.IsTimingFunction(value) {
			return problem(Error, "not a timing function: %s", value)
		}
	case key == "background" || key == "background-image":
		if strings.EqualFold(value, "none") {
			return nil
		}
		if css.IsGradientValue(d.Value) {
			g, err := css.ParseGradient(d.Value)
			if err != nil {
				return problem(Error, "malformed gradient: %v", err)
			}
			for _, stop := range g.Stops {
				bad = append(bad, missingRef(t, stop.Color)...)
			}
		} else {
			return checkColorValue(t, problem, d.Value)
		}
	case key == "border-color":
		return checkFieldList(t, problem, d.Value, 4, fieldIsColor)
	case key == "border-style":
		return checkFieldList(t, problem, d.Value, 4, fieldIsBorderStyle)
	case key == "border-width":
		return checkFieldList(t, problem, d.Value, 4, fieldIsLength)
	case isColorProperty(key):
		return checkColorValue(t, problem, d.Value)
	case key == "margin" || key == "padding" || key == "border-radius":
		return checkFieldList(t, problem, d.Value, 4, fieldIsLength)
	case key == "border" || key == "outline":
		return checkFieldList(t, problem, d.Value, 3, fieldIsBorderPart)
	case key == "letter-spacing":
		if strings.EqualFold(value, "normal") {
			return nil
		}
		return checkLengthValue(problem, value)
	case isLengthProperty(key):
		return checkLengthValue(problem, value)
	case key == "opacity":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 1 {
			return problem(Error, "opacity must be a number between 0 and 1: %s", value)
		}
	case key == "font-weight":
		switch strings.ToLower(value) {
		case "normal", "bold", "bolder", "lighter":
			return nil
		}
		if n, err := strconv.Atoi(value); err != nil || n < 1 || n > 1000 {
			return problem(Error, "not a font weight: %s", value)
		}
	case key == "font-style":
		switch strings.ToLower(value) {
		case "normal", "italic", "oblique":
			return nil
		}
		return problem(Error, "not a font style: %s", value)
	}
	// remaining known properties (font-family, display, keyword-valued
	// text properties, …) accept free-form or keyword text
	if len(bad) > 0 {
		return problem(Error, "palette color %s is not defined", strings.Join(bad, ", "))
	}
	return nil
}

// missingRef reports an undefined palette reference, e.g. "@accent"
// without a matching @define-color line.
func missingRef(t *Theme, c css.ColorT) []string {
	if name := c.Ref(); name != "" {
		if _, ok := t.Palette.Color(name); !ok {
			return []string{"@" + name}
		}
	}
	return nil
}

type problemFunc func(sev Severity, format string, args ...interface{}) []Problem

func checkColorValue(t *Theme, problem problemFunc, v style.Property) []Problem {
	c := css.ParseColor(v)
	if c.IsUnset() {
		return problem(Error, "malformed color value: %s", v)
	}
	if missing := missingRef(t, c); len(missing) > 0 {
		return problem(Error, "palette color %s is not defined", missing[0])
	}
	return nil
}

func checkLengthValue(problem problemFunc, field string) []Problem {
	if bareNumber.MatchString(field) && field != "0" {
		return problem(Error, "length without a unit: %s", field)
	}
	if d := css.ParseDimen(style.Property(field)); d.IsUnset() {
		return problem(Error, "malformed length: %s", field)
	}
	return nil
}

// checkFieldList validates a space separated value like "5px 15px" or
// "1px solid @accent" field by field.
func checkFieldList(t *Theme, problem problemFunc, v style.Property, maxFields int,
	check func(t *Theme, field string) (bool, []string)) []Problem {
	//
	groups, err := css.ValueFields(v)
	if err != nil {
		return problem(Error, "malformed value: %v", err)
	}
	if len(groups) != 1 {
		return problem(Error, "unexpected comma in value: %s", v)
	}
	fields := groups[0]
	if len(fields) == 0 || len(fields) > maxFields {
		return problem(Error, "expected 1 to %d fields, have %d", maxFields, len(fields))
	}
	for _, field := range fields {
		ok, missing := check(t, field)
		if !ok {
			return problem(Error, "unexpected field in value: %s", field)
		}
		if len(missing) > 0 {
			return problem(Error, "palette color %s is not defined", missing[0])
		}
	}
	return nil
}

func fieldIsLength(t *Theme, field string) (bool, []string) {
	if bareNumber.MatchString(field) && field != "0" {
		return false, nil
	}
	return !css.ParseDimen(style.Property(field)).IsUnset(), nil
}

func fieldIsColor(t *Theme, field string) (bool, []string) {
	c := css.ParseColor(style.Property(field))
	if c.IsUnset() {
		return false, nil
	}
	return true, missingRef(t, c)
}

func fieldIsBorderStyle(t *Theme, field string) (bool, []string) {
	return borderStyles[strings.ToLower(field)], nil
}

// fieldIsBorderPart accepts the fields of border/outline shorthands:
// width, line style or color, in any order.
func fieldIsBorderPart(t *Theme, field string) (bool, []string) {
	if ok, _ := fieldIsBorderStyle(t, field); ok {
		return true, nil
	}
	if ok, _ := fieldIsLength(t, field); ok {
		return true, nil
	}
	return fieldIsColor(t, field)
}

func isColorProperty(key string) bool {
	switch key {
	case "color", "caret-color", "background-color":
		return true
	}
	return strings.HasSuffix(key, "-color")
}

func isLengthProperty(key string) bool {
	switch key {
	case "min-width", "min-height", "font-size", "outline-width", "outline-offset":
		return true
	}
	if strings.HasPrefix(key, "margin-") || strings.HasPrefix(key, "padding-") {
		return true
	}
	if strings.HasPrefix(key, "border-") &&
		(strings.HasSuffix(key, "-width") || strings.HasSuffix(key, "-radius")) {
		return true
	}
	return false
}

// selector token patterns for the binding check.
var (
	classTokens  = regexp.MustCompile(`\.([A-Za-z_][A-Za-z0-9_-]*)`)
	pseudoTokens = regexp.MustCompile(`::?[a-z-]+`)
	attrTokens   = regexp.MustCompile(`\[[^\]]*\]`)
	typeTokens   = regexp.MustCompile(`(?:^|[\s>+~,])([a-z][a-z0-9-]*)`)
)

// CheckBindings checks a theme's selectors against the widget vocabulary
// and, if a tree is given, against an actual layout: class and type names
// must exist in the widget inventory, and every selector should match at
// least one widget of the tree. All findings are warnings; a theme is
// free to style widgets an individual layout does not contain.
func CheckBindings(t *Theme, root *widget.Node) []Problem {
	if t == nil {
		return nil
	}
	widgets := collectWidgets(root)
	var problems []Problem
	reported := make(map[string]bool)
	for i, r := range t.Rules {
		sel := normalizeSelector(r.Selector)
		if sel == "" || reported[sel] {
			continue
		}
		reported[sel] = true
		vocabulary := true
		for _, m := range classTokens.FindAllStringSubmatch(sel, -1) {
			if !widget.KnownClass(m[1]) {
				vocabulary = false
				problems = append(problems, Problem{
					Rule: i, Selector: sel, Severity: Warning,
					Message: fmt.Sprintf("class %q is not used by any stock widget", m[1]),
				})
			}
		}
		stripped := classTokens.ReplaceAllString(sel, "")
		stripped = pseudoTokens.ReplaceAllString(stripped, "")
		stripped = attrTokens.ReplaceAllString(stripped, "")
		for _, m := range typeTokens.FindAllStringSubmatch(stripped, -1) {
			if !widget.KnownKind(m[1]) {
				vocabulary = false
				problems = append(problems, Problem{
					Rule: i, Selector: sel, Severity: Warning,
					Message: fmt.Sprintf("%q is not a widget type", m[1]),
				})
			}
		}
		if !vocabulary || len(widgets) == 0 {
			continue
		}
		// State pseudos are dropped for the match test. The reference tree
		// is static, ":hover" rules bind as soon as the base selector
		// reaches a widget.
		base := strings.TrimSpace(pseudoTokens.ReplaceAllString(sel, ""))
		if base == "" {
			continue
		}
		selectors, err := cssom.CompileSelectorGroup(base)
		if err != nil {
			continue // Validate reports unsupported selectors
		}
		matched := false
	match:
		for _, s := range selectors {
			for _, w := range widgets {
				if s.Matches(w) {
					matched = true
					break match
				}
			}
		}
		if !matched {
			problems = append(problems, Problem{
				Rule: i, Selector: sel, Severity: Warning,
				Message: "matches nothing in the layout",
			})
		}
	}
	return problems
}

func collectWidgets(root *widget.Node) []*widget.Node {
	if root == nil {
		return nil
	}
	widgets := []*widget.Node{root}
	for i := 0; i < root.ChildCount(); i++ {
		widgets = append(widgets, collectWidgets(root.ChildWidget(i))...)
	}
	return widgets
}
