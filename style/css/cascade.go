package css

import (
	"errors"
	"fmt"

	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/widget"
)

// GetCascadedProperty gets the value of a style property for a widget.
// The search cascades to the property maps of ancestor widgets, if
// available.
//
// Clients will usually call GetProperty(…) instead, as this will respect
// CSS semantics for inherited properties.
//
// The call to GetCascadedProperty will flag an error if the style property
// isn't found (which should not happen, as every property should be included
// in the 'user-agent' default style properties).
func GetCascadedProperty(w *widget.Node, key string) (style.Property, error) {
	// key has to be found in a property group of type G.
	// For cascading, we will start at the current widget and walk upwards
	// until we find a widget with a property-group G attached.
	// This upward-traversal must succeed if the property is correctly
	// initialized at least in the user-agent styles at the tree root.
	// Then, starting with G, we will upward-cascade until key is found.
	groupname := style.GroupNameFromPropertyKey(key)
	for w != nil {
		if group := w.Styles().Group(groupname); group != nil {
			if g := group.Cascade(key); g != nil {
				p, _ := g.Get(key)
				return p, nil
			}
		}
		w = w.ParentWidget()
	}
	errmsg := fmt.Sprintf("Cannot find ancestor with prop-group %s -- did you style the tree?", groupname)
	return style.NullStyle, errors.New(errmsg)
}

// GetProperty gets the value of a style property for a widget. If the
// property is not set locally on the widget and the property is
// inheritable, the search cascades to the property maps of ancestor
// widgets, if available.
//
// The call to GetProperty will flag an error if the style property isn't
// found (which should not happen, as every property should be included in
// the 'user-agent' default style properties).
func GetProperty(w *widget.Node, key string) (style.Property, error) {
	if style.IsCascading(key) {
		return GetCascadedProperty(w, key)
	}
	p := GetLocalProperty(w.Styles(), key)
	if p == style.NullStyle {
		p = style.GetUserAgentDefaultProperty(w.HTMLNode(), key)
	}
	return p, nil
}

// GetLocalProperty returns a style property value, if it is set locally
// for a widget's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	groupname := style.GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}
