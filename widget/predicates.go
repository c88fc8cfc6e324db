package widget

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"github.com/swordbreaker/blade-bar/tree"
)

// WidgetIsLabel is a predicate to match label widgets during a tree walk.
var WidgetIsLabel = IsKind("label")

// IsKind returns a predicate matching widgets of a given kind.
func IsKind(kind string) tree.Predicate[*Node] {
	return func(test *tree.Node[*Node], node *tree.Node[*Node]) (match *tree.Node[*Node], err error) {
		if w := FromTree(test); w != nil && w.Kind() == kind {
			match = test
		}
		return
	}
}

// HasClass returns a predicate matching widgets with a style class
// attached.
func HasClass(class string) tree.Predicate[*Node] {
	return func(test *tree.Node[*Node], node *tree.Node[*Node]) (match *tree.Node[*Node], err error) {
		if w := FromTree(test); w != nil && w.HasClass(class) {
			match = test
		}
		return
	}
}

// InState returns a predicate matching widgets with at least one of the
// given interaction states set.
func InState(states StateSet) tree.Predicate[*Node] {
	return func(test *tree.Node[*Node], node *tree.Node[*Node]) (match *tree.Node[*Node], err error) {
		if w := FromTree(test); w != nil && w.States().Overlaps(states) {
			match = test
		}
		return
	}
}

// BelowWithClass collects all widgets strictly below w with a style class
// attached, in no particular order.
func BelowWithClass(w *Node, class string) ([]*Node, error) {
	selection, err := w.Walk().DescendentsWith(HasClass(class)).Promise()()
	if err != nil {
		return nil, err
	}
	widgets := make([]*Node, len(selection))
	for i, n := range selection {
		widgets[i] = FromTree(n)
	}
	return widgets, nil
}
