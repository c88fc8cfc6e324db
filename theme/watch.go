package theme

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// debounceDelay collapses the bursts of write events editors produce
// when saving a file.
const debounceDelay = 100 * time.Millisecond

// Watcher watches a theme file and re-parses it on change. Many editors
// save by writing a temporary file and renaming it over the original, so
// the watch is placed on the directory and filtered by file name, which
// survives the rename dance.
type Watcher struct {
	path    string
	fs      afero.Fs
	fsw     *fsnotify.Watcher
	done    chan struct{}
	closing sync.Once
}

// WatchFile watches a theme file. Whenever the file changes, it is
// re-parsed after a short debounce and the result is delivered to
// onChange, errors included (a half-saved file may not parse, the next
// write usually heals it). Close releases the watch.
func WatchFile(path string, onChange func(*Theme, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path: filepath.Clean(path),
		fs:   afero.NewOsFs(),
		fsw:  fsw,
		done: make(chan struct{}),
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, err
	}
	go w.run(onChange)
	tracer().Infof("watching theme file %s", w.path)
	return w, nil
}

func (w *Watcher) run(onChange func(*Theme, error)) {
	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
				!ev.Op.Has(fsnotify.Rename) {
				continue
			}
			tracer().Debugf("theme file event: %s", ev)
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				fire = debounce.C
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceDelay)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			tracer().Errorf("theme watcher: %v", err)
		case <-fire:
			debounce, fire = nil, nil
			onChange(Load(w.fs, w.path))
		}
	}
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. A callback already in flight still completes.
func (w *Watcher) Close() error {
	var err error
	w.closing.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}
