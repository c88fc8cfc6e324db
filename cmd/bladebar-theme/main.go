// Command bladebar-theme is the maintenance tool for BladeBar theme
// files: lint, canonical formatting, computed-style inspection and a
// terminal preview, all without a running compositor.
package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"github.com/samber/lo"
)

func main() {
	lo.Must0(setupConfig())
	Execute()
}
