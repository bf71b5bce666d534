package themes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow batches the burst of filesystem events a theme edit
// produces into a single refresh.
const debounceWindow = 250 * time.Millisecond

// Watcher monitors the theme directories on the real filesystem and
// triggers a manager refresh when their contents change. It serializes
// the refreshes it triggers itself; refreshes initiated elsewhere while
// a watcher is running must be routed through the same mutex by the
// caller.
type Watcher struct {
	mu       sync.Mutex
	manager  *Manager
	watcher  *fsnotify.Watcher
	active   bool
	debounce *time.Timer
}

// NewWatcher creates a watcher for the given manager.
func NewWatcher(manager *Manager) *Watcher {
	return &Watcher{manager: manager}
}

// Start begins monitoring the packaged themes directory and every
// configured search path that exists. Directories that do not exist are
// skipped; a watcher with nothing to watch is not an error. Stop the
// watcher by cancelling the context.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active {
		w.manager.app.Logger().Debug("theme watcher already active")
		return nil
	}

	dirs := w.watchDirs()
	if len(dirs) == 0 {
		w.manager.app.Logger().Debug("no theme directories exist, skipping watcher setup")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch theme directory %s: %w", dir, err)
		}
		w.manager.app.Logger().Debug("Watching theme directory", "path", dir)
	}

	w.watcher = watcher
	w.active = true

	go w.watchLoop(ctx)

	return nil
}

// watchDirs returns the theme directories that currently exist on the
// real filesystem. fsnotify watches OS paths, so the watcher is only
// meaningful when the application runs on the OS filesystem.
func (w *Watcher) watchDirs() []string {
	var dirs []string

	packaged := filepath.Join(w.manager.app.RootPath(), packagedDir)
	candidates := append([]string{packaged}, w.manager.app.Config().ThemePaths...)

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer func() {
		w.mu.Lock()
		if w.watcher != nil {
			w.watcher.Close()
			w.watcher = nil
		}
		if w.debounce != nil {
			w.debounce.Stop()
			w.debounce = nil
		}
		w.active = false
		w.mu.Unlock()
		w.manager.app.Logger().Info("Theme watcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.manager.app.Logger().Error("Theme watcher error", "error", err)
		}
	}
}

// handleEvent schedules a debounced refresh for any event that can
// change the set of loadable themes.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.manager.app.Logger().Debug("Theme directory changed",
		"event", event.Op.String(), "path", event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceWindow, w.refresh)
}

func (w *Watcher) refresh() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.manager.Refresh(); err != nil {
		// There is no caller to propagate to from the watch loop.
		w.manager.app.Logger().Error("Theme refresh failed", "error", err)
		return
	}
	w.manager.app.Logger().Info("Themes refreshed after directory change")
}
