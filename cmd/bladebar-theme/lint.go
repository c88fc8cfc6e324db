package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swordbreaker/blade-bar/theme"
	"github.com/swordbreaker/blade-bar/widget"
)

var lintCmd = &cobra.Command{
	Use:   "lint <theme.css>",
	Short: "Check a theme for malformed values and dangling selectors",
	Long: `Lint parses a theme and checks every declaration against its
property's value grammar: colors, lengths with units, gradients, shadow
lists, transitions, border shorthands. Selectors are checked against the
widget classes and types of the stock bar layout; a selector that can
never match anything is worth knowing about before a compositor session.

Errors mean the renderer will drop or misread a rule; warnings flag
authoring inconsistencies like repeated selectors. The exit status is 1
if any errors were found.`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().Bool("bindings", true, "Check selectors against the stock bar layout")
}

var (
	errorTag   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningTag = color.New(color.FgYellow).SprintFunc()
	okTag      = color.New(color.FgGreen).SprintFunc()
)

func runLint(cmd *cobra.Command, args []string) error {
	thm, _, err := loadTheme(args[0])
	if err != nil {
		return err
	}
	problems := theme.Validate(thm)
	if lo.Must(cmd.Flags().GetBool("bindings")) {
		problems = append(problems, theme.CheckBindings(thm, widget.BladeBar())...)
	}
	out := cmd.OutOrStdout()
	errs := 0
	for _, p := range problems {
		tag := warningTag("warning:")
		if p.Severity == theme.Error {
			tag = errorTag("error:")
			errs++
		}
		fmt.Fprintf(out, "%s %s\n", tag, p)
	}
	if errs > 0 {
		return fmt.Errorf("theme %s: %d problems", thm.Name, errs)
	}
	if len(problems) == 0 {
		fmt.Fprintf(out, "%s theme %s is clean\n", okTag("ok:"), thm.Name)
	}
	return nil
}
