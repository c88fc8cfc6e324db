package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/npillmayer/schuko/tracing"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	bladebar "github.com/swordbreaker/blade-bar"
	"github.com/swordbreaker/blade-bar/theme"
)

var rootCmd = &cobra.Command{
	Use:   "bladebar-theme",
	Short: "Inspect, lint and preview BladeBar themes",
	Long: `bladebar-theme is the maintenance tool for BladeBar theme files.
It checks theme CSS for malformed values and dangling selectors, rewrites
themes in canonical form, and resolves computed styles against the stock
bar layout without a running compositor.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			verboseTracing()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug traces")
	lo.Must0(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))

	rootCmd.PersistentFlags().String("themes-dir", "", "Directory holding user themes")
	lo.Must0(viper.BindPFlag("themes.dir", rootCmd.PersistentFlags().Lookup("themes-dir")))
}

// setupConfig wires the viper configuration: config file bladebar.yaml
// under the XDG config home, overridable per key with BLADEBAR_*
// environment variables and flags.
func setupConfig() error {
	viper.SetConfigName("bladebar")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "bladebar"))
	viper.SetEnvPrefix("bladebar")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("theme", bladebar.DefaultTheme)
	viper.SetDefault("themes.dir", theme.UserThemeDir())
	viper.SetDefault("verbose", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	tracer().Infof("using config file %s", viper.ConfigFileUsed())
	return nil
}

// verboseTracing raises the trace level on every engine area.
func verboseTracing() {
	for _, key := range []string{
		"bladebar.tree", "bladebar.widget", "bladebar.style",
		"bladebar.cssom", "bladebar.theme", "bladebar.cli",
	} {
		tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
	}
}

// tracer traces with key 'bladebar.cli'.
func tracer() tracing.Trace {
	return tracing.Select("bladebar.cli")
}

// loadTheme reads a theme from a file path, falling back to the built-in
// variant of that name, so "bladebar-theme lint dracula" works without a
// file. The second return reports whether the theme came from a file.
func loadTheme(arg string) (*theme.Theme, bool, error) {
	fs := afero.NewOsFs()
	if ok, _ := afero.Exists(fs, arg); ok {
		thm, err := theme.Load(fs, arg)
		return thm, true, err
	}
	name := strings.TrimSuffix(filepath.Base(arg), ".css")
	thm, err := bladebar.Builtin(name)
	if err != nil {
		return nil, false, fmt.Errorf("%s: no such file or built-in theme", arg)
	}
	return thm, false, nil
}

// Execute runs the root command.
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
