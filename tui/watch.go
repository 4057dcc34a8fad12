package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"kanban/internal/infrastructure/config"
)

var errWatcherClosed = errors.New("config watcher closed")

// ConfigWatcher re-reads the config file whenever it changes on disk
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	loader  *config.Loader
	path    string
}

// NewConfigWatcher watches the directory holding the loader's config file.
// Editors often replace the file instead of writing it, so the directory is
// watched rather than the file itself.
func NewConfigWatcher(loader *config.Loader) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	path := filepath.Clean(loader.GetConfigPath())
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	return &ConfigWatcher{
		watcher: w,
		loader:  loader,
		path:    path,
	}, nil
}

// Next waits for the next change to the config file and reloads it
func (cw *ConfigWatcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-cw.watcher.Events:
				if !ok {
					return configReloadedMsg{err: errWatcherClosed}
				}
				if filepath.Clean(event.Name) != cw.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := cw.loader.Load()
				return configReloadedMsg{cfg: cfg, err: err}

			case err, ok := <-cw.watcher.Errors:
				if !ok {
					return configReloadedMsg{err: errWatcherClosed}
				}
				return configReloadedMsg{err: err}
			}
		}
	}
}

// Close stops watching
func (cw *ConfigWatcher) Close() error {
	return cw.watcher.Close()
}
