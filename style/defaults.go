package style

import (
	"golang.org/x/net/html"
)

// Default values for properties which do not inherit from a parent widget.
// These are the values a widget shows when no theme rule matches it.
var nonInherited = map[string]string{
	"background-color":           "transparent",
	"background-image":           "none",
	"border-top-color":           "currentcolor",
	"border-left-color":          "currentcolor",
	"border-right-color":         "currentcolor",
	"border-bottom-color":        "currentcolor",
	"border-top-style":           "none",
	"border-left-style":          "none",
	"border-right-style":         "none",
	"border-bottom-style":        "none",
	"box-shadow":                 "none",
	"text-decoration-line":       "none",
	"opacity":                    "1",
	"outline-style":              "none",
	"outline-color":              "currentcolor",
	"transition-property":        "all",
	"transition-duration":        "0s",
	"transition-timing-function": "ease",
	"transition-delay":           "0s",
}

var isDimension = map[string]string{
	"min-width":                  "0",
	"min-height":                 "0",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-right-radius": "0",
	"border-bottom-left-radius":  "0",
	"outline-width":              "medium",
	"outline-offset":             "0",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	p := NullStyle
	switch key {
	case "display":
		p = DisplayPropertyForWidget(node)
	default:
		if dim, ok := isDimension[key]; ok {
			return Property(dim)
		}
		if def, ok := nonInherited[key]; ok {
			return Property(def)
		}
	}
	return p
}

// DisplayPropertyForWidget returns the default `display` CSS property for a
// widget node. Widget nodes are element nodes named after their widget type
// ("window", "box", "label", ...).
func DisplayPropertyForWidget(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-widget")
		return "none"
	}
	switch node.Data {
	case "window", "box", "popover", "separator", "centerbox", "revealer":
		return "block"
	case "label", "image":
		return "inline"
	case "button", "menubutton", "switch", "scale":
		return "inline-block"
	}
	tracer().Infof("unknown widget type %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties.
// In real-world browsers these are the user-agent CSS values; for a status
// bar they are the values a widget shows before any theme is applied.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	m := make(map[string]*PropertyGroup, 12)
	root := NewPropertyGroup("Root")

	x := NewPropertyGroup(PGX) // special group for extension properties
	for _, kv := range additionalProps {
		x.Set(kv.Key, kv.Value)
	}
	m[PGX] = x

	margins := NewPropertyGroup(PGMargins)
	margins.Set("margin-top", "0")
	margins.Set("margin-left", "0")
	margins.Set("margin-right", "0")
	margins.Set("margin-bottom", "0")
	margins.Parent = root
	m[PGMargins] = margins

	padding := NewPropertyGroup(PGPadding)
	padding.Set("padding-top", "0")
	padding.Set("padding-left", "0")
	padding.Set("padding-right", "0")
	padding.Set("padding-bottom", "0")
	padding.Parent = root
	m[PGPadding] = padding

	border := NewPropertyGroup(PGBorder)
	border.Set("border-top-color", "currentcolor")
	border.Set("border-left-color", "currentcolor")
	border.Set("border-right-color", "currentcolor")
	border.Set("border-bottom-color", "currentcolor")
	border.Set("border-top-width", "medium")
	border.Set("border-left-width", "medium")
	border.Set("border-right-width", "medium")
	border.Set("border-bottom-width", "medium")
	border.Set("border-top-style", "none")
	border.Set("border-left-style", "none")
	border.Set("border-right-style", "none")
	border.Set("border-bottom-style", "none")
	border.Set("border-top-left-radius", "0")
	border.Set("border-top-right-radius", "0")
	border.Set("border-bottom-right-radius", "0")
	border.Set("border-bottom-left-radius", "0")
	border.Parent = root
	m[PGBorder] = border

	dimension := NewPropertyGroup(PGDimension)
	dimension.Set("min-width", "0")
	dimension.Set("min-height", "0")
	dimension.Parent = root
	m[PGDimension] = dimension

	display := NewPropertyGroup(PGDisplay)
	display.Set("display", "block")
	display.Set("visibility", "visible")
	display.Set("opacity", "1")
	display.Parent = root
	m[PGDisplay] = display

	color := NewPropertyGroup(PGColor)
	color.Set("color", "white")
	color.Set("caret-color", "currentcolor")
	color.Set("background-color", "transparent")
	color.Set("background-image", "none")
	color.Parent = root
	m[PGColor] = color

	font := NewPropertyGroup(PGFont)
	font.Set("font-family", "Cantarell")
	font.Set("font-size", "11pt")
	font.Set("font-weight", "normal")
	font.Set("font-style", "normal")
	font.Parent = root
	m[PGFont] = font

	text := NewPropertyGroup(PGText)
	text.Set("letter-spacing", "normal")
	text.Set("text-transform", "none")
	text.Set("text-decoration-line", "none")
	text.Set("text-decoration-style", "solid")
	text.Set("text-decoration-color", "currentcolor")
	text.Parent = root
	m[PGText] = text

	effects := NewPropertyGroup(PGEffects)
	effects.Set("box-shadow", "none")
	effects.Set("text-shadow", "none")
	effects.Parent = root
	m[PGEffects] = effects

	transition := NewPropertyGroup(PGTransition)
	transition.Set("transition-property", "all")
	transition.Set("transition-duration", "0s")
	transition.Set("transition-timing-function", "ease")
	transition.Set("transition-delay", "0s")
	transition.Parent = root
	m[PGTransition] = transition

	outline := NewPropertyGroup(PGOutline)
	outline.Set("outline-color", "currentcolor")
	outline.Set("outline-width", "medium")
	outline.Set("outline-style", "none")
	outline.Set("outline-offset", "0")
	outline.Parent = root
	m[PGOutline] = outline

	return &PropertyMap{m}
}
