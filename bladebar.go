package bladebar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/swordbreaker/blade-bar/style/cssom"
	"github.com/swordbreaker/blade-bar/theme"
	"github.com/swordbreaker/blade-bar/widget"
)

//go:embed themes/*.css
var builtins embed.FS

// DefaultTheme names the built-in theme the bar ships with.
const DefaultTheme = "blade"

// Builtin parses a built-in theme variant by name.
func Builtin(name string) (*theme.Theme, error) {
	data, err := builtins.ReadFile("themes/" + name + ".css")
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, theme.ErrThemeNotFound)
	}
	return theme.Parse(name, string(data))
}

// BuiltinNames lists the built-in theme variants, default first.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtins, "themes")
	if err != nil {
		return nil
	}
	names := []string{DefaultTheme}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".css")
		if name != DefaultTheme {
			names = append(names, name)
		}
	}
	return names
}

// Builtins returns a registry holding every built-in theme, with
// DefaultTheme selected.
func Builtins() (*theme.Registry, error) {
	reg := theme.NewRegistry()
	for _, name := range BuiltinNames() {
		t, err := Builtin(name)
		if err != nil {
			return nil, err
		}
		if err := reg.Add(t); err != nil {
			return nil, err
		}
	}
	if err := reg.SetDefault(DefaultTheme); err != nil {
		return nil, err
	}
	return reg, nil
}

// Apply styles a widget tree with a theme. Computed properties end up in
// the widgets' style maps.
func Apply(t *theme.Theme, root *widget.Node) error {
	om := cssom.NewCSSOM(nil)
	if err := om.AddStylesFor(nil, t.Sheet(), cssom.Author); err != nil {
		return err
	}
	return om.Style(root)
}

// StyledBar builds the bar's reference widget tree and applies a theme
// to it.
func StyledBar(t *theme.Theme) (*widget.Node, error) {
	bar := widget.BladeBar()
	if err := Apply(t, bar); err != nil {
		return nil, err
	}
	return bar, nil
}
