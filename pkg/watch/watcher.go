// Package watch re-renders CSV sources when they change on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single CSV source and triggers a reload when it is
// written to. Writes are debounced: editors often emit several events
// for one save.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration

	// OnChange is invoked after the debounce window with the watched
	// path. OnError receives reload and watch failures.
	OnChange func(path string) error
	OnError  func(path string, err error)
}

// New creates a watcher for path with the given debounce window.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the containing directory: editors commonly replace the
	// file on save instead of writing in place.
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		fs:       fs,
		path:     abs,
		debounce: debounce,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled, invoking OnChange after each
// debounced write to the watched file.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != w.path {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if w.OnChange == nil {
					return
				}
				if err := w.OnChange(w.path); err != nil && w.OnError != nil {
					w.OnError(w.path, err)
				}
			})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(w.path, err)
			}
		}
	}
}
