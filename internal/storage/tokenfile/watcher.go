// Package tokenfile persists the token table as a JSON document.
package tokenfile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/yndnr/tokenadm/internal/telemetry/logger"
)

// Watcher records changes to the token file.
//
// It never calls back: Changed drains the pending events on the caller's
// goroutine, so the menu stays single threaded.
type Watcher struct {
	watcher *fsnotify.Watcher
	file    string
	logger  logger.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the logger for the watcher.
func WithWatcherLogger(l logger.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = l
	}
}

// NewWatcher watches the directory holding path.
// The directory must exist.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		file:    filepath.Clean(path),
		logger:  logger.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	// Watch the directory, not the file: saves replace the file by rename.
	dir := filepath.Dir(w.file)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		w.logger.Warn("failed to watch directory",
			"path", dir,
			"error", err,
		)
		return nil, err
	}
	w.logger.Debug("watching directory for changes",
		"path", dir,
		"file", filepath.Base(w.file),
	)
	return w, nil
}

// Changed drains pending events and reports whether any touched the
// token file since the previous call. It never blocks.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return changed
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.logger.Debug("token file changed",
					"file", event.Name,
					"op", event.Op.String(),
				)
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return changed
			}
			w.logger.Warn("token file watcher error",
				"error", err,
			)
		default:
			return changed
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
