package widget

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"strings"

	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/tree"
	"golang.org/x/net/html"
)

// Node is a node of a widget tree. Widget trees are the subject of theme
// styling: after a styler has run, every node carries the computed style
// properties for its widget.
//
// We build widget trees on top of the generic tree type of package tree,
// using composition. Each tree node carries its owning widget as payload,
// letting clients walk the tree generically and still get at the widget.
type Node struct {
	tree.Node[*Node]
	htmlNode       *html.Node
	computedStyles *style.PropertyMap
	states         StateSet
}

// New creates a widget of a given kind, e.g. "label", with optional style
// classes attached.
func New(kind string, classes ...string) *Node {
	h := &html.Node{
		Type: html.ElementNode,
		Data: kind,
	}
	if len(classes) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	return NewForHTMLNode(h)
}

// NewForHTMLNode wraps an element of a parsed layout document in a widget.
func NewForHTMLNode(h *html.Node) *Node {
	w := &Node{htmlNode: h}
	w.Payload = w // tree nodes carry their owning widget as payload
	return w
}

// FromTree returns the widget for a given tree node.
// Remember that tree nodes carry their widget as payload.
func FromTree(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the underlying tree node for a widget.
func (w *Node) TreeNode() *tree.Node[*Node] {
	return &w.Node
}

// HTMLNode returns the element representation of a widget. Selector
// matching operates on this element.
func (w *Node) HTMLNode() *html.Node {
	return w.htmlNode
}

// Kind returns the widget kind, e.g. "button". Theme rules select on the
// kind as the element name.
func (w *Node) Kind() string {
	if w == nil || w.htmlNode == nil {
		return ""
	}
	return w.htmlNode.Data
}

// Styles returns the computed style properties of a widget, or nil if the
// widget has not been styled yet.
func (w *Node) Styles() *style.PropertyMap {
	return w.computedStyles
}

// SetStyles attaches a map of computed style properties to a widget.
func (w *Node) SetStyles(styles *style.PropertyMap) {
	w.computedStyles = styles
}

// Append adds child widgets to w, after any existing children, and
// returns w. The element representations are linked up as well, which
// keeps matching of descendent selectors ("box label") intact.
func (w *Node) Append(children ...*Node) *Node {
	for _, ch := range children {
		if ch == nil {
			continue
		}
		w.AddChild(&ch.Node)
		if w.htmlNode != nil && ch.htmlNode != nil && ch.htmlNode.Parent == nil {
			w.htmlNode.AppendChild(ch.htmlNode)
		}
	}
	return w
}

// Detach disconnects a widget from its parent, element representation
// included, and returns it.
func (w *Node) Detach() *Node {
	w.Isolate()
	if w.htmlNode != nil && w.htmlNode.Parent != nil {
		w.htmlNode.Parent.RemoveChild(w.htmlNode)
	}
	return w
}

// ParentWidget returns the parent widget, or nil for the root of a tree.
func (w *Node) ParentWidget() *Node {
	return FromTree(w.Parent())
}

// ChildWidget returns child widget number i, or nil if there is none.
func (w *Node) ChildWidget(i int) *Node {
	if ch, ok := w.Child(i); ok {
		return FromTree(ch)
	}
	return nil
}

// Walk creates a tree walker set up to traverse the widget tree rooted
// at w.
func (w *Node) Walk() *tree.Walker[*Node, *Node] {
	if w == nil {
		return tree.NewWalker[*Node](nil)
	}
	return tree.NewWalker(&w.Node)
}

// --- Style classes ---------------------------------------------------------

// Classes returns the style classes attached to a widget.
func (w *Node) Classes() []string {
	cls := attribute(w.htmlNode, "class")
	if cls == "" {
		return nil
	}
	return strings.Fields(cls)
}

// HasClass checks whether a style class is attached to a widget.
func (w *Node) HasClass(class string) bool {
	for _, c := range w.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass attaches a style class to a widget and returns w. Attaching a
// class twice has no effect.
func (w *Node) AddClass(class string) *Node {
	if class == "" || w.HasClass(class) {
		return w
	}
	if cls := attribute(w.htmlNode, "class"); cls != "" {
		setAttribute(w.htmlNode, "class", cls+" "+class)
	} else {
		setAttribute(w.htmlNode, "class", class)
	}
	return w
}

// RemoveClass detaches a style class from a widget and returns w.
func (w *Node) RemoveClass(class string) *Node {
	if !w.HasClass(class) {
		return w
	}
	var keep []string
	for _, c := range w.Classes() {
		if c != class {
			keep = append(keep, c)
		}
	}
	if len(keep) == 0 {
		removeAttribute(w.htmlNode, "class")
	} else {
		setAttribute(w.htmlNode, "class", strings.Join(keep, " "))
	}
	return w
}

// --- Widget states ---------------------------------------------------------

// States returns the set of interaction states currently set on a widget.
func (w *Node) States() StateSet {
	return w.states
}

// SetState sets or clears interaction states on a widget and returns w.
// States are mirrored as element attributes; the attribute is what
// selectors with state pseudo-classes get matched against.
func (w *Node) SetState(states StateSet, on bool) *Node {
	for _, st := range allWidgetStates {
		if !states.Contains(st) {
			continue
		}
		if on {
			w.states.Set(st)
			setAttribute(w.htmlNode, st.String(), "")
		} else {
			w.states.Clear(st)
			removeAttribute(w.htmlNode, st.String())
		}
	}
	return w
}

// --- Name and text ---------------------------------------------------------

// Name returns the widget name, or "" for an anonymous widget.
func (w *Node) Name() string {
	return attribute(w.htmlNode, "id")
}

// SetName names a widget and returns w. Named widgets may be selected by
// theme rules with an ID selector, e.g. "#bladebar".
func (w *Node) SetName(name string) *Node {
	setAttribute(w.htmlNode, "id", name)
	return w
}

// SetText sets the text content of a widget and returns w. Useful for
// labels and buttons, mostly.
func (w *Node) SetText(text string) *Node {
	if w.htmlNode == nil {
		return w
	}
	for ch := w.htmlNode.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			ch.Data = text
			return w
		}
	}
	w.htmlNode.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return w
}

// Text returns the text content of a widget, child widgets excluded.
func (w *Node) Text() string {
	if w == nil || w.htmlNode == nil {
		return ""
	}
	var b strings.Builder
	for ch := w.htmlNode.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// String returns a selector-like description of a widget, e.g.
// "button.tray-button:hover".
func (w *Node) String() string {
	if w == nil || w.htmlNode == nil {
		return "<empty widget>"
	}
	var b strings.Builder
	b.WriteString(w.Kind())
	if name := w.Name(); name != "" {
		b.WriteString("#")
		b.WriteString(name)
	}
	for _, c := range w.Classes() {
		b.WriteString(".")
		b.WriteString(c)
	}
	for _, st := range allWidgetStates {
		if w.states.Contains(st) {
			b.WriteString(":")
			b.WriteString(st.String())
		}
	}
	return b.String()
}

// --- Element attributes ----------------------------------------------------

func attribute(h *html.Node, key string) string {
	if h == nil {
		return ""
	}
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttribute(h *html.Node, key, val string) {
	if h == nil {
		return
	}
	for i, a := range h.Attr {
		if a.Key == key {
			h.Attr[i].Val = val
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttribute(h *html.Node, key string) {
	if h == nil {
		return
	}
	for i, a := range h.Attr {
		if a.Key == key {
			h.Attr = append(h.Attr[:i], h.Attr[i+1:]...)
			return
		}
	}
}
