package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	bladebar "github.com/swordbreaker/blade-bar"
	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/style/css"
	"github.com/swordbreaker/blade-bar/theme"
	"github.com/swordbreaker/blade-bar/widget"
)

var previewCmd = &cobra.Command{
	Use:   "preview <theme.css>",
	Short: "Render a terminal approximation of the themed bar",
	Long: `Preview styles the stock bar layout and renders its segments with
the computed foreground and background colors, plus the theme's color
palette as swatches. Alpha channels are dropped, terminal cells do not
blend.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

// The bar segments shown in the preview, in layout order.
var previewClasses = []string{
	"title-label", "cpu-label", "memory-label", "temp-label", "notification-label",
}

func runPreview(cmd *cobra.Command, args []string) error {
	thm, _, err := loadTheme(args[0])
	if err != nil {
		return err
	}
	bar, err := bladebar.StyledBar(thm)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	base := lipgloss.NewStyle().Padding(0, 1)
	containers, err := widget.BelowWithClass(bar, "main-container")
	if err == nil && len(containers) > 0 {
		if bg, ok := hexColorOf(thm, containers[0], "background-color"); ok {
			base = base.Background(lipgloss.Color(bg))
		}
	}
	var segments []string
	for _, class := range previewClasses {
		ws, err := widget.BelowWithClass(bar, class)
		if err != nil || len(ws) == 0 {
			continue
		}
		w := ws[0]
		st := base
		if fg, ok := hexColorOf(thm, w, "color"); ok {
			st = st.Foreground(lipgloss.Color(fg))
		}
		if weight, err := css.GetProperty(w, "font-weight"); err == nil && weight == "bold" {
			st = st.Bold(true)
		}
		segments = append(segments, st.Render(w.Text()))
	}
	fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, segments...))

	if thm.Palette.Len() > 0 {
		fmt.Fprintln(out)
		for _, name := range thm.Palette.Names() {
			v, _ := thm.Palette.Color(name)
			line := fmt.Sprintf("@%s = %s", name, v)
			if hex, ok := hexValue(thm, v); ok {
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
				line = swatch + "  " + line
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

// hexColorOf reads a cascaded property of a styled widget and converts
// it to a hex color, chasing palette references.
func hexColorOf(thm *theme.Theme, w *widget.Node, key string) (string, bool) {
	p, err := css.GetProperty(w, key)
	if err != nil {
		return "", false
	}
	return hexValue(thm, p)
}

// hexValue converts a color value to "#rrggbb". Palette references are
// resolved against the theme, the alpha channel is dropped.
func hexValue(thm *theme.Theme, v style.Property) (string, bool) {
	var rgba color.RGBA
	c := css.ParseColor(thm.Palette.Resolve(v))
	switch m := c.Match(); m {
	case m.Just(&rgba):
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B), true
	}
	return "", false
}
