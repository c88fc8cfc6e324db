/*
Package theme represents BladeBar themes as data.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

A theme is an ordered sequence of rules, each pairing a widget selector
with an ordered list of declarations. That is all a theme is: the file
carries no behavior, and everything that acts on it lives elsewhere
(matching and cascading in package cssom, value interpretation in package
style/css). This package parses theme files, hands them to the styling
engine, serializes them back to CSS text, and lints them.

Themes are written in GTK's dialect of CSS. The subset supported here
covers type and class selectors, the dynamic pseudo-classes, descendant
combinators, and the @define-color extension for named palette colors.
Rule order is significant: for rules of equal specificity the later one
wins, so a theme may legitimately repeat a selector to override single
declarations.

Themes can be organized in a Registry of named variants and reloaded on
file change with a Watcher.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker
*/
package theme

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bladebar.theme'.
func tracer() tracing.Trace {
	return tracing.Select("bladebar.theme")
}
