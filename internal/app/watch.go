package app

import (
	"time"

	"github.com/philipparndt/gorbit/pkg/watcher"
)

// setupFileWatcher reloads the scene file when it changes on disk.
// The callback runs on the watcher goroutine; the reload itself happens
// on the main thread because it touches GPU resources.
func (app *App) setupFileWatcher() error {
	fw, err := watcher.New(300 * time.Millisecond)
	if err != nil {
		return err
	}

	if err := fw.Watch(app.Scene.path, func(string) {
		app.Scene.mu.Lock()
		app.Scene.needsReload = true
		app.Scene.mu.Unlock()
	}); err != nil {
		fw.Close()
		return err
	}

	app.Scene.fileWatcher = fw
	return nil
}

// consumeReload reports and clears the pending reload flag.
func (app *App) consumeReload() bool {
	app.Scene.mu.Lock()
	defer app.Scene.mu.Unlock()

	if !app.Scene.needsReload {
		return false
	}
	app.Scene.needsReload = false
	return true
}
