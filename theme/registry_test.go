package theme_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swordbreaker/blade-bar/theme"
)

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	blade, err := theme.Parse("blade", `label { color: #e0e0e0; }`)
	require.NoError(t, err)
	light, err := theme.Parse("light", `label { color: #2e3440; }`)
	require.NoError(t, err)

	reg := theme.NewRegistry()
	require.NoError(t, reg.Add(blade))
	require.NoError(t, reg.Add(light))
	assert.Equal(t, []string{"blade", "light"}, reg.Names())

	got, err := reg.Theme("light")
	require.NoError(t, err)
	assert.Same(t, light, got)

	_, err = reg.Theme("nord")
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrThemeNotFound))

	def, err := reg.Default()
	require.NoError(t, err)
	assert.Same(t, blade, def, "the first registered theme is the default")

	require.NoError(t, reg.SetDefault("light"))
	def, err = reg.Default()
	require.NoError(t, err)
	assert.Same(t, light, def)

	err = reg.SetDefault("nord")
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrThemeNotFound))

	err = reg.Add(nil)
	require.Error(t, err)
}

func TestRegistrySwapsOnReAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	v1, err := theme.Parse("blade", `label { color: #ffffff; }`)
	require.NoError(t, err)
	v2, err := theme.Parse("blade", `label { color: #e0e0e0; }`)
	require.NoError(t, err)

	reg := theme.NewRegistry()
	require.NoError(t, reg.Add(v1))
	require.NoError(t, reg.Add(v2))
	assert.Len(t, reg.Names(), 1)

	got, err := reg.Theme("blade")
	require.NoError(t, err)
	assert.Same(t, v2, got)
}

func TestRegistryLoadDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/themes/blade.css",
		[]byte(".main-container { padding: 0 10px; }"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/themes/dracula.css",
		[]byte("label { color: #f8f8f2; }"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/themes/broken.css",
		[]byte("label { color: #f8f8f2"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/themes/README.txt",
		[]byte("not a theme"), 0644))

	reg := theme.NewRegistry()
	n, err := reg.LoadDir(fs, "/themes")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "the broken theme gets skipped, the text file ignored")
	assert.Equal(t, []string{"blade", "dracula"}, reg.Names())

	_, err = reg.LoadDir(fs, "/nowhere")
	require.Error(t, err)
}
