/*
Package bladebar ties the theming engine together: the built-in theme
variants for the BladeBar status bar and convenience calls to style the
reference widget tree with one of them.

The heavy lifting happens in the sub-packages:

  - theme: the theme model, parsing, validation, registry, hot reload
  - style, style/css, style/cssom: properties, typed values, the cascade
  - widget: the bar's widget tree
  - tree: concurrency-safe tree walking underneath it all

A minimal client styles the stock bar like this:

	thm, _ := bladebar.Builtin(bladebar.DefaultTheme)
	bar, err := bladebar.StyledBar(thm)

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/
package bladebar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bladebar.theme'.
func tracer() tracing.Trace {
	return tracing.Select("bladebar.theme")
}
