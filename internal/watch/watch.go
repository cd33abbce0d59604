// Package watch reports changed files below a directory, used to reload
// shaders while a lesson is running.
package watch

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher sends the slash separated path, relative to its root, of every
// file written or created below root.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     *zap.Logger
}

// New starts watching root and all its subdirectories.
func New(root string, log *zap.Logger) (*Watcher, error) {

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}

	w := &Watcher{
		root:    root,
		watcher: fw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.loop()

	return w, nil

}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			rel, err := filepath.Rel(w.root, event.Name)
			if err != nil {
				continue
			}
			select {
			case w.changes <- filepath.ToSlash(rel):
			case <-w.done:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

// Changes delivers changed file paths. It is closed by Close.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Drain returns the distinct paths changed since the last call without blocking.
func (w *Watcher) Drain() []string {
	var paths []string
	seen := make(map[string]bool)
	for {
		select {
		case p, ok := <-w.changes:
			if !ok {
				return paths
			}
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		default:
			return paths
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
