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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <theme.css>",
	Short: "Rewrite a theme in canonical form",
	Long: `Fmt parses a theme and prints its canonical serialization:
palette definitions first, rules in source order, declarations indented
by four spaces. Comments do not survive, the canonical form is about the
rules, not the prose.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolP("write", "w", false, "Rewrite the file in place instead of printing")
}

func runFmt(cmd *cobra.Command, args []string) error {
	thm, isFile, err := loadTheme(args[0])
	if err != nil {
		return err
	}
	if lo.Must(cmd.Flags().GetBool("write")) {
		if !isFile {
			return fmt.Errorf("cannot rewrite built-in theme %s in place", thm.Name)
		}
		return afero.WriteFile(afero.NewOsFs(), args[0], []byte(thm.String()), 0644)
	}
	_, err = thm.WriteTo(cmd.OutOrStdout())
	return err
}
