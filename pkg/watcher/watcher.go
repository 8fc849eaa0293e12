// Package watcher provides debounced change notification for a single
// file, used to hot-reload scene files while the viewer is running.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one file and triggers a callback after changes
// settle for the debounce interval.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	path     string
	callback func(string)
	timer    *time.Timer
}

// New creates a watcher with the given debounce interval.
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &FileWatcher{watcher: w, debounce: debounce}, nil
}

// Watch registers the file and starts delivering change notifications.
// The parent directory is watched rather than the file itself, because
// editors commonly replace the file on save.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	fw.path = absPath
	fw.callback = callback
	fw.mu.Unlock()

	if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	go fw.run()
	return nil
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.handleChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

func (fw *FileWatcher) handleChange(changed string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if changed != fw.path {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}

	path, callback := fw.path, fw.callback
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}
