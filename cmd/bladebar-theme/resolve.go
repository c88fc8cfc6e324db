package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	bladebar "github.com/swordbreaker/blade-bar"
	"github.com/swordbreaker/blade-bar/style/cssom"
	"github.com/swordbreaker/blade-bar/widget"
	"github.com/swordbreaker/blade-bar/widget/widgetdbg"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <theme.css> [selector]",
	Short: "Apply a theme to the stock bar layout and print computed styles",
	Long: `Resolve styles the stock bar layout with a theme and prints what
the cascade computed. Without a selector it prints the widget tree; with
a selector it prints the computed style groups of every matching widget.

	bladebar-theme resolve blade '.main-container'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringSlice("groups", nil, "Style property groups to show (default: box model, display, color)")
	resolveCmd.Flags().Bool("dot", false, "Emit the styled tree as a GraphViz diagram instead")
}

func runResolve(cmd *cobra.Command, args []string) error {
	thm, _, err := loadTheme(args[0])
	if err != nil {
		return err
	}
	bar, err := bladebar.StyledBar(thm)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	groups := lo.Must(cmd.Flags().GetStringSlice("groups"))
	if len(groups) == 0 {
		groups = nil
	}
	if lo.Must(cmd.Flags().GetBool("dot")) {
		return widgetdbg.ToGraphViz(bar, out, groups)
	}
	if len(args) < 2 {
		fmt.Fprint(out, widgetdbg.Tree(bar))
		return nil
	}
	selectors, err := cssom.CompileSelectorGroup(args[1])
	if err != nil {
		return fmt.Errorf("%q: %w", args[1], err)
	}
	matched := 0
	eachWidget(bar, func(w *widget.Node) {
		for _, s := range selectors {
			if s.Matches(w) {
				fmt.Fprint(out, widgetdbg.StyleReport(w, groups))
				matched++
				return
			}
		}
	})
	if matched == 0 {
		return fmt.Errorf("%q matches nothing in the layout", args[1])
	}
	return nil
}

func eachWidget(w *widget.Node, visit func(*widget.Node)) {
	visit(w)
	for i := 0; i < w.ChildCount(); i++ {
		eachWidget(w.ChildWidget(i), visit)
	}
}
