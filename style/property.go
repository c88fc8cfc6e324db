package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'bladebar.style'
func tracer() tracing.Trace {
	return tracing.Select("bladebar.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsNone checks wether a property has value "none".
func (p Property) IsNone() bool {
	return p == "none"
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// GTK CSS knows a whole lot of properties. We split them up into
// organisatorial groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	Parent    *PropertyGroup
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	return r
}

// IsSet is a predicate wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property keys are always handled in lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	key = strings.ToLower(key)
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	key = strings.ToLower(key)
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	_, exists := pg.propsDict[key]
	if !exists {
		pg.propsDict[key] = p
	}
}

// ForkOnProperty creates a new PropertyGroup, pre-filled with a given property.
// If 'cascade' is true, the new PropertyGroup will be
// linking to the ancesting PropertyGroup containing this property.
func (pg *PropertyGroup) ForkOnProperty(key string, p Property, cascade bool) (*PropertyGroup, bool) {
	var ancestor *PropertyGroup
	if cascade {
		ancestor = pg.Cascade(key)
		if ancestor != nil {
			p2, _ := ancestor.Get(key)
			if p2 == p {
				return pg, false
			}
		}
	}
	npg := NewPropertyGroup(pg.name)
	npg.Parent = ancestor
	npg.Set(key, p)
	return npg, true
}

// Cascade finds the ancesting PropertyGroup containing the given property-key.
// Returns nil if no ancestor contains the key.
func (pg *PropertyGroup) Cascade(key string) *PropertyGroup {
	it := pg
	for it != nil && !it.IsSet(key) { // stopper is default partial
		it = it.Parent
	}
	return it
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins    = "Margins"
	PGPadding    = "Padding"
	PGBorder     = "Border"
	PGDimension  = "Dimension"
	PGDisplay    = "Display"
	PGColor      = "Color"
	PGFont       = "Font"
	PGText       = "Text"
	PGEffects    = "Effects"
	PGOutline    = "Outline"
	PGTransition = "Transition"
	PGX          = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":                  PGMargins, // Margins
	"margin-left":                 PGMargins,
	"margin-right":                PGMargins,
	"margin-bottom":               PGMargins,
	"padding-top":                 PGPadding, // Padding
	"padding-left":                PGPadding,
	"padding-right":               PGPadding,
	"padding-bottom":              PGPadding,
	"border-top-color":            PGBorder, // Border
	"border-left-color":           PGBorder,
	"border-right-color":          PGBorder,
	"border-bottom-color":         PGBorder,
	"border-top-width":            PGBorder,
	"border-left-width":           PGBorder,
	"border-right-width":          PGBorder,
	"border-bottom-width":         PGBorder,
	"border-top-style":            PGBorder,
	"border-left-style":           PGBorder,
	"border-right-style":          PGBorder,
	"border-bottom-style":         PGBorder,
	"border-top-left-radius":      PGBorder,
	"border-top-right-radius":     PGBorder,
	"border-bottom-right-radius":  PGBorder,
	"border-bottom-left-radius":   PGBorder,
	"min-width":                   PGDimension, // Dimension
	"min-height":                  PGDimension,
	"display":                     PGDisplay, // Display
	"visibility":                  PGDisplay,
	"opacity":                     PGDisplay,
	"color":                       PGColor, // Color
	"caret-color":                 PGColor,
	"background-color":            PGColor,
	"background-image":            PGColor,
	"font-family":                 PGFont, // Font
	"font-size":                   PGFont,
	"font-weight":                 PGFont,
	"font-style":                  PGFont,
	"letter-spacing":              PGText, // Text
	"text-transform":              PGText,
	"text-decoration-line":        PGText,
	"text-decoration-color":       PGText,
	"text-decoration-style":       PGText,
	"box-shadow":                  PGEffects, // Effects
	"text-shadow":                 PGEffects,
	"transition-property":         PGTransition, // Transition
	"transition-duration":         PGTransition,
	"transition-timing-function":  PGTransition,
	"transition-delay":            PGTransition,
	"outline-color":               PGOutline, // Outline
	"outline-width":               PGOutline,
	"outline-style":               PGOutline,
	"outline-offset":              PGOutline,
}

// IsCascading returns wether the standard behaviour for a property is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "caret-color", "visibility":
		return true
	case "letter-spacing", "text-transform", "text-shadow":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shorthand property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "3px"
// For the logic behind this, refer to e.g.
// https://developer.mozilla.org/en-US/docs/Web/CSS/Shorthand_properties .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := splitFields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "border":
		return feazeBorder(fields)
	case "outline":
		return feazeOutline(fields)
	case "transition":
		return feazeTransition(value.String())
	case "background":
		return feazeBackground(value)
	case "text-decoration":
		return feazeTextDecoration(fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompound returns wether a property key names a shorthand which
// SplitCompoundProperty is able to split up.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border", "border-color", "border-width",
		"border-style", "border-radius", "outline", "transition",
		"background", "text-decoration":
		return true
	}
	return false
}

// KnownPropertyKey returns wether key names a style property or a
// shorthand this engine understands.
func KnownPropertyKey(key string) bool {
	if _, ok := groupNameFromPropertyKey[key]; ok {
		return true
	}
	return IsCompound(key)
}

// CSS logic to distribute individual values from compound shorthands is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

// The border shorthand sets width, style and color for all four sides at
// once, in any order: "border: 1px solid rgba(0,0,0,0.3)".
func feazeBorder(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("expecting 1-3 values for border")
	}
	var r []KeyValue
	for _, f := range fields {
		switch {
		case isStyleKeyword(f):
			kv, _ := feazeCompound4("border", "style", fourDirs, []string{f})
			r = append(r, kv...)
		case isWidthValue(f):
			kv, _ := feazeCompound4("border", "width", fourDirs, []string{f})
			r = append(r, kv...)
		default: // everything else will be a color
			kv, _ := feazeCompound4("border", "color", fourDirs, []string{f})
			r = append(r, kv...)
		}
	}
	return r, nil
}

// The outline shorthand works like border, but for a single 'side'.
func feazeOutline(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("expecting 1-3 values for outline")
	}
	var r []KeyValue
	for _, f := range fields {
		switch {
		case isStyleKeyword(f):
			r = append(r, KeyValue{"outline-style", Property(f)})
		case isWidthValue(f):
			r = append(r, KeyValue{"outline-width", Property(f)})
		default:
			r = append(r, KeyValue{"outline-color", Property(f)})
		}
	}
	return r, nil
}

// The transition shorthand sets property, duration, timing function and
// delay: "transition: background-color 0.2s ease". Comma-separated lists of
// transitions are not split up.
func feazeTransition(value string) ([]KeyValue, error) {
	if hasTopLevelComma(value) { // a list of transitions is left alone
		return nil, fmt.Errorf("cannot split list of transitions")
	}
	fields := splitFields(value)
	if len(fields) == 0 || len(fields) > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for transition")
	}
	r := []KeyValue{
		{"transition-property", "all"},
		{"transition-duration", "0s"},
		{"transition-timing-function", "ease"},
		{"transition-delay", "0s"},
	}
	timeseen := false
	for _, f := range fields {
		switch {
		case isTimeValue(f):
			if !timeseen {
				r[1].Value = Property(f)
				timeseen = true
			} else {
				r[3].Value = Property(f)
			}
		case isTimingFunction(f):
			r[2].Value = Property(f)
		default:
			r[0].Value = Property(f)
		}
	}
	return r, nil
}

// The background shorthand covers a lot of ground in CSS; GTK themes use it
// for either a color or an image (gradient).
func feazeBackground(value Property) ([]KeyValue, error) {
	v := strings.TrimSpace(value.String())
	if strings.HasPrefix(v, "linear-gradient") || strings.HasPrefix(v, "radial-gradient") ||
		strings.HasPrefix(v, "url(") {
		return []KeyValue{{"background-image", Property(v)}}, nil
	}
	return []KeyValue{{"background-color", Property(v)}}, nil
}

func feazeTextDecoration(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("expecting 1-3 values for text-decoration")
	}
	var r []KeyValue
	for _, f := range fields {
		switch f {
		case "none", "underline", "overline", "line-through":
			r = append(r, KeyValue{"text-decoration-line", Property(f)})
		case "solid", "double", "dotted", "dashed", "wavy":
			r = append(r, KeyValue{"text-decoration-style", Property(f)})
		default:
			r = append(r, KeyValue{"text-decoration-color", Property(f)})
		}
	}
	return r, nil
}

func isStyleKeyword(f string) bool {
	switch f {
	case "none", "hidden", "solid", "dotted", "dashed", "double",
		"groove", "ridge", "inset", "outset":
		return true
	}
	return false
}

func isWidthValue(f string) bool {
	if f == "thin" || f == "medium" || f == "thick" {
		return true
	}
	return len(f) > 0 && (f[0] >= '0' && f[0] <= '9' || f[0] == '.')
}

func isTimeValue(f string) bool {
	if !strings.HasSuffix(f, "s") {
		return false
	}
	ff := strings.TrimSuffix(strings.TrimSuffix(f, "s"), "m")
	return len(ff) > 0 && (ff[0] >= '0' && ff[0] <= '9' || ff[0] == '.')
}

func isTimingFunction(f string) bool {
	switch f {
	case "ease", "linear", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end":
		return true
	}
	return strings.HasPrefix(f, "cubic-bezier(") || strings.HasPrefix(f, "steps(")
}

// splitFields splits a property value at whitespace, but keeps functional
// notations like "rgba(26, 26, 46, 0.95)" together.
func splitFields(value string) []string {
	var fields []string
	var buf strings.Builder
	depth := 0
	for _, r := range value {
		switch {
		case r == '(':
			depth++
			buf.WriteRune(r)
		case r == ')':
			depth--
			buf.WriteRune(r)
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			if buf.Len() > 0 {
				fields = append(fields, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteRune(r)
		}
	}
	if buf.Len() > 0 {
		fields = append(fields, buf.String())
	}
	return fields
}

func hasTopLevelComma(value string) bool {
	depth := 0
	for _, r := range value {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a widget node: a node links to a
// property map, which contains zero or more property groups. Property maps
// may share property groups.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, v := range pmap.m {
		s += v.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Properties returns all properties of a map, from all property groups.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	var r []KeyValue
	for _, group := range pmap.m {
		r = append(r, group.Properties()...)
	}
	return r
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
//
// If the property map does not yet contain a group of this kind, it will
// simply set this group (instead of copying values).
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	g := pmap.Group(group.name)
	if g == nil {
		pmap.m[group.name] = group
	} else {
		for k, v := range group.propsDict {
			if overwrite {
				g.Set(k, v)
			} else {
				g.Add(k, v)
			}
		}
	}
	return pmap
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("margin-top", "2px")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}
