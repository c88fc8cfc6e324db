package theme_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swordbreaker/blade-bar/style/cssom"
	"github.com/swordbreaker/blade-bar/theme"
	"github.com/swordbreaker/blade-bar/widget"
)

func TestParseTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	thm, err := theme.Parse("test", `
       @define-color accent #e94560;
       @define-color surface rgba(26, 26, 46, 0.95);

       window.main-window {
           background-color: transparent;
       }

       /* the panel itself */
       .main-container {
           background-color: @surface;
           padding: 5px 15px;
       }
    `)
	require.NoError(t, err)
	assert.Equal(t, "test", thm.Name)
	require.Len(t, thm.Rules, 2)
	assert.Equal(t, "window.main-window", thm.Rules[0].Selector)
	assert.Equal(t, []string{"accent", "surface"}, thm.Palette.Names())
	surface, ok := thm.Palette.Color("surface")
	require.True(t, ok)
	assert.Equal(t, "rgba(26, 26, 46, 0.95)", string(surface))

	container := thm.Rules[1]
	require.Len(t, container.Declarations, 2)
	assert.Equal(t, "background-color", container.Declarations[0].Property)
	assert.Equal(t, "@surface", string(container.Declarations[0].Value))
	assert.Equal(t, "padding", container.Declarations[1].Property)
}

func TestParseThemeError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	_, err := theme.Parse("broken", `label { color: red`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestThemeLastRuleWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	thm, err := theme.Parse("override", `
       .main-container {
           background-color: rgba(26, 26, 46, 0.95);
           padding: 5px 15px;
       }

       label {
           color: #ffffff;
           font-weight: normal;
       }

       .main-container {
           padding: 0 10px;
       }

       label {
           color: #e0e0e0;
       }
    `)
	require.NoError(t, err)

	resolved := thm.Resolved()
	require.Len(t, resolved, 2)
	container := resolved[0]
	assert.Equal(t, ".main-container", container.Selector)
	padding, ok := container.Declaration("padding")
	require.True(t, ok)
	assert.Equal(t, "0 10px", string(padding.Value), "the later padding declaration wins")
	background, ok := container.Declaration("background-color")
	require.True(t, ok)
	assert.Equal(t, "rgba(26, 26, 46, 0.95)", string(background.Value),
		"declarations the later rule does not touch survive")

	labels := resolved[1]
	color, ok := labels.Declaration("color")
	require.True(t, ok)
	assert.Equal(t, "#e0e0e0", string(color.Value))
	weight, ok := labels.Declaration("font-weight")
	require.True(t, ok)
	assert.Equal(t, "normal", string(weight.Value))
}

func TestThemeAppliedToWidgetTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	thm, err := theme.Parse("override", `
       .main-container {
           background-color: rgba(26, 26, 46, 0.95);
           padding: 5px 15px;
       }

       .main-container {
           padding: 0 10px;
       }
    `)
	require.NoError(t, err)

	bar := widget.BladeBar()
	om := cssom.NewCSSOM(nil)
	require.NoError(t, om.AddStylesFor(nil, thm.Sheet(), cssom.Author))
	require.NoError(t, om.Style(bar))

	found, err := widget.BelowWithClass(bar, "main-container")
	require.NoError(t, err)
	require.Len(t, found, 1)
	styles := found[0].Styles()

	top, ok := styles.Property("padding-top")
	require.True(t, ok)
	assert.Equal(t, "0", top.String())
	right, ok := styles.Property("padding-right")
	require.True(t, ok)
	assert.Equal(t, "10px", right.String())
	background, ok := styles.Property("background-color")
	require.True(t, ok)
	assert.Equal(t, "rgba(26, 26, 46, 0.95)", background.String())
}

func TestThemeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	source := `
       @define-color accent #e94560;

       window.main-window {
           background-color: transparent;
       }

       .main-container {
           background-color: rgba(26, 26, 46, 0.95);
           padding: 5px 15px;
           border: 1px solid @accent;
       }

       .main-container {
           padding: 0 10px;
       }

       button.notification-button:hover {
           background-color: rgba(255, 255, 255, 0.1);
       }
    `
	first, err := theme.Parse("trip", source)
	require.NoError(t, err)
	second, err := theme.Parse("trip", first.String())
	require.NoError(t, err)
	assert.True(t, theme.Equivalent(first, second),
		"parsing the serialization must preserve the resolved rule set")

	third, err := theme.Parse("trip", first.String()+"\nlabel { color: #000000; }\n")
	require.NoError(t, err)
	assert.False(t, theme.Equivalent(first, third))
}

func TestThemeSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	thm, err := theme.Parse("small", `
       @define-color accent #e94560;
       label {   color :  @accent ;  font-weight: bold !important; }
    `)
	require.NoError(t, err)
	expected := "@define-color accent #e94560;\n" +
		"\n" +
		"label {\n" +
		"    color: @accent;\n" +
		"    font-weight: bold !important;\n" +
		"}\n"
	assert.Equal(t, expected, thm.String())

	var b strings.Builder
	n, err := thm.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(len(expected)), n)
	assert.Equal(t, expected, b.String())
}

func TestThemeSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	thm, err := theme.Parse("sheet", `
       label { color: #111111; color: #222222; }
       .menu { padding: 4px !important; padding: 8px; }
    `)
	require.NoError(t, err)
	sheet := thm.Sheet()
	require.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 2)

	assert.Equal(t, "label", rules[0].Selector())
	assert.Equal(t, []string{"color"}, rules[0].Properties())
	assert.Equal(t, "#222222", rules[0].Value("color").String(),
		"within a rule the later declaration wins")

	assert.Equal(t, "4px", rules[1].Value("padding").String(),
		"an important declaration outranks a later normal one")
	assert.True(t, rules[1].IsImportant("padding"))
}

func TestThemeSheetAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	base, err := theme.Parse("base", `label { color: #ffffff; }`)
	require.NoError(t, err)
	extra, err := theme.Parse("extra", `.menu { padding: 8px; }`)
	require.NoError(t, err)

	base.Sheet().AppendRules(extra.Sheet())
	require.Len(t, base.Rules, 2)
	assert.Equal(t, ".menu", base.Rules[1].Selector)
	require.Len(t, base.Rules[1].Declarations, 1)
	assert.Equal(t, "8px", string(base.Rules[1].Declarations[0].Value))
}

func TestLoadTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/themes/dracula.css",
		[]byte("label { color: #f8f8f2; }"), 0644))

	thm, err := theme.Load(fs, "/themes/dracula.css")
	require.NoError(t, err)
	assert.Equal(t, "dracula", thm.Name)
	require.Len(t, thm.Rules, 1)

	_, err = theme.Load(fs, "/themes/nope.css")
	require.Error(t, err)
}
