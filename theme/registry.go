package theme

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

// ErrThemeNotFound flags a lookup for a theme name nobody registered.
var ErrThemeNotFound = errors.New("no theme with this name")

// Registry is a set of named theme variants with a default selection.
// It is safe for concurrent use; a hot-reload goroutine may swap a theme
// while renderers read it.
type Registry struct {
	mu       sync.RWMutex
	themes   map[string]*Theme
	selected string
}

// NewRegistry returns an empty theme registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]*Theme)}
}

// Add registers a theme under its name. Re-registering a name swaps the
// theme, which is how hot reload publishes a re-parsed file.
func (reg *Registry) Add(t *Theme) error {
	if t == nil || t.Name == "" {
		return errors.New("cannot register unnamed theme")
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.themes == nil {
		reg.themes = make(map[string]*Theme)
	}
	reg.themes[t.Name] = t
	if reg.selected == "" {
		reg.selected = t.Name
	}
	return nil
}

// Theme looks up a theme by name.
func (reg *Registry) Theme(name string) (*Theme, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	t, ok := reg.themes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrThemeNotFound)
	}
	return t, nil
}

// Default returns the selected default theme. Without an explicit
// SetDefault this is the first theme registered.
func (reg *Registry) Default() (*Theme, error) {
	reg.mu.RLock()
	name := reg.selected
	reg.mu.RUnlock()
	if name == "" {
		return nil, ErrThemeNotFound
	}
	return reg.Theme(name)
}

// SetDefault selects the default theme. The name must be registered.
func (reg *Registry) SetDefault(name string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.themes[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrThemeNotFound)
	}
	reg.selected = name
	return nil
}

// Names returns the registered theme names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.themes))
	for name := range reg.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDir loads every *.css file of a directory as a theme named after
// the file. Themes that do not parse are skipped with a trace message, a
// broken user theme must not take the registry down. Returns the number
// of themes loaded.
func (reg *Registry) LoadDir(fsys afero.Fs, dir string) (int, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("cannot read theme directory: %w", err)
	}
	loaded := 0
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".css") {
			continue
		}
		t, err := Load(fsys, filepath.Join(dir, info.Name()))
		if err != nil {
			tracer().Errorf("skipping theme file %s: %v", info.Name(), err)
			continue
		}
		if err := reg.Add(t); err != nil {
			tracer().Errorf("skipping theme file %s: %v", info.Name(), err)
			continue
		}
		loaded++
	}
	tracer().Infof("loaded %d themes from %s", loaded, dir)
	return loaded, nil
}

// UserThemeDir returns the directory for user supplied themes, placed
// under the XDG config home.
func UserThemeDir() string {
	return filepath.Join(xdg.ConfigHome, "bladebar", "themes")
}
