/*
Package cssom implements the styling engine for BladeBar themes.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

BladeBar is styled with themes written in GTK's dialect of CSS. Styling
works the way browsers do it, scaled down to a status bar: theme rules
are matched against the widget tree, the matching declarations get
cascaded per widget, and the winning values are attached to the widgets
as style property maps.

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia.
Therefore we compromise on some features in order to complete this in a
realistic time frame.

Selector matching relies on cascadia. CSS parsing is de-coupled by
introducing appropriate interfaces StyleSheet and Rule. Concrete
implementations may be found in sub-package douceuradapter and in
package theme.

A note on widget states: a selector engine for parse trees has no notion
of interaction state, so pseudo-classes like ":hover" would never match
anything. Widgets therefore mirror their states as element attributes,
and selectors get rewritten to their attribute form before compilation
(see RewriteStatePseudos).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bladebar.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("bladebar.cssom")
}
