/*
Package css provides typed access to style properties.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
style properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given widget.

Most value types of this package come as option types with pattern
matching support, e.g.:

	d := css.ParseDimen("10px")
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
	    // use du
	}

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bladebar.style'.
func tracer() tracing.Trace {
	return tracing.Select("bladebar.style")
}
