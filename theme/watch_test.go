package theme_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swordbreaker/blade-bar/theme"
)

func TestWatchFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "blade.css")
	require.NoError(t, os.WriteFile(path, []byte("label { color: #ffffff; }"), 0644))

	reloaded := make(chan *theme.Theme, 4)
	w, err := theme.WatchFile(path, func(thm *theme.Theme, err error) {
		if err == nil { // a half-saved file may not parse yet
			reloaded <- thm
		}
	})
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, path, w.Path())

	time.Sleep(50 * time.Millisecond) // let the watch settle
	require.NoError(t, os.WriteFile(path, []byte("label { color: #222222; }"), 0644))

	select {
	case thm := <-reloaded:
		assert.Equal(t, "blade", thm.Name)
		rules := thm.Resolved()
		require.Len(t, rules, 1)
		d := rules[0].Declaration("color")
		require.NotNil(t, d)
		assert.EqualValues(t, "#222222", d.Value)
	case <-time.After(3 * time.Second):
		t.Error("timed out waiting for the theme to reload")
	}
}

func TestWatchFileClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "blade.css")
	require.NoError(t, os.WriteFile(path, []byte("label { }"), 0644))

	w, err := theme.WatchFile(path, func(*theme.Theme, error) {})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "closing twice is harmless")
}

func TestWatchFileMissingDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.theme")
	defer teardown()
	//
	_, err := theme.WatchFile("/no/such/directory/blade.css", func(*theme.Theme, error) {})
	require.Error(t, err)
}
