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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	bladebar "github.com/swordbreaker/blade-bar"
	"github.com/swordbreaker/blade-bar/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in and user theme variants",
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

var headerTag = color.New(color.FgHiBlue, color.Bold).SprintFunc()

func runThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerTag("Built-in:"))
	for _, name := range bladebar.BuiltinNames() {
		if name == viper.GetString("theme") {
			fmt.Fprintf(out, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(out, name)
	}

	dir := viper.GetString("themes.dir")
	reg := theme.NewRegistry()
	n, err := reg.LoadDir(afero.NewOsFs(), dir)
	if err != nil || n == 0 {
		tracer().Debugf("no user themes under %s", dir)
		return nil
	}
	fmt.Fprintln(out, headerTag("User:"))
	for _, name := range reg.Names() {
		fmt.Fprintf(out, "%s (%s)\n", name, dir)
	}
	return nil
}
