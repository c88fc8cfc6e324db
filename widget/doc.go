/*
Package widget models the bar's widget tree for styling purposes.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

BladeBar composes its surface from a small set of widget kinds: the bar
window, layout boxes, labels, buttons, images, separators and popover
menus. Styling the bar means matching theme rules against this tree and
attaching the cascaded style properties to every widget.

Widgets carry an HTML element representation under the hood. This is what
lets us reuse battle-tested selector machinery instead of writing our own
matcher: kind selectors match the element name, class selectors match the
widget's style classes, and interaction states like hover or focus are
mirrored as element attributes.

Widget trees may be constructed programmatically (see BladeBar) or read
from a small layout document (see ParseLayout).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bladebar.widget'.
func tracer() tracing.Trace {
	return tracing.Select("bladebar.widget")
}
