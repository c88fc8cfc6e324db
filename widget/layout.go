package widget

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"errors"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoWidgetElement flags a layout document without any widget element.
var ErrNoWidgetElement = errors.New("layout contains no widget element")

// ParseLayout reads a widget layout from markup and returns the root
// widget. Layout documents are small HTML-ish fragments where element
// names denote widget kinds:
//
//	<window class="main-window">
//	  <box class="main-container">
//	    <label class="title-label">BladeBar</label>
//	  </box>
//	</window>
//
// The parser is lenient, as HTML parsers are. The first element below the
// document body is taken to be the root widget.
func ParseLayout(input io.Reader) (*Node, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	body := findElement(doc, atom.Body)
	if body == nil {
		return nil, ErrNoWidgetElement
	}
	for h := body.FirstChild; h != nil; h = h.NextSibling {
		if h.Type == html.ElementNode {
			root := wrapElement(h)
			tracer().Infof("parsed layout with root widget %v", root)
			return root, nil
		}
	}
	return nil, ErrNoWidgetElement
}

// wrapElement builds widgets for an element and its descendents. The
// element links stay untouched, the widget tree mirrors them.
func wrapElement(h *html.Node) *Node {
	w := NewForHTMLNode(h)
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		w.AddChild(&wrapElement(ch).Node)
	}
	return w
}

// findElement searches a parse tree for the first element with a given tag.
func findElement(h *html.Node, tag atom.Atom) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == tag {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if e := findElement(ch, tag); e != nil {
			return e
		}
	}
	return nil
}

// BladeBar builds the bar's default widget tree: a top-anchored window
// holding a title label, a flexible spacer, the system monitor labels,
// the notification button and the tray.
//
// This mirrors what the bar application assembles at startup and serves
// as the reference tree for theme development and tests.
func BladeBar() *Node {
	window := New("window", "main-window").SetName("bladebar")
	mainBox := New("box", "main-container")
	title := New("label", "title-label").SetText("BladeBar")
	spacer := New("label")
	sysmon := New("box", "system-monitor").Append(
		New("label", "cpu-label").SetText("CPU: ---%"),
		New("label", "memory-label").SetText("MEM: ---%"),
		New("label", "temp-label").SetText("TEMP: ---°C"),
	)
	notification := New("button", "notification-button").Append(
		New("label", "notification-label").SetText("🔔"),
	)
	tray := New("box", "tray-widget").Append(
		New("button", "tray-button").Append(New("image")),
	)
	mainBox.Append(title, spacer, sysmon, notification, tray)
	window.Append(mainBox)
	return window
}

// TrayMenu builds the reference popover menu for a tray item. Entries
// with an empty label become separators; an empty entry list produces the
// "No menu items" placeholder, just like the bar does for status notifier
// items without a menu.
func TrayMenu(entries ...string) *Node {
	popover := New("popover")
	menu := New("box", "menu")
	if len(entries) == 0 {
		menu.Append(New("label", "dim-label").SetText("No menu items"))
	}
	for _, entry := range entries {
		if entry == "" {
			menu.Append(New("separator", "menu-separator"))
			continue
		}
		item := New("button", "flat", "menu-item").Append(
			New("label").SetText(entry),
		)
		menu.Append(item)
	}
	popover.Append(menu)
	return popover
}
