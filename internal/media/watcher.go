package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"photo-catalog/internal/logging"
)

// Watcher monitors the catalog roots for filesystem changes and invokes
// a callback so the caller can mark the catalog stale. It never mutates
// the catalog itself; a rescan stays an explicit operation.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()
	done     chan struct{}
}

// NewWatcher starts watching every directory under the given roots.
func NewWatcher(roots []string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	count := 0
	for _, root := range roots {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
				if addErr := fsw.Add(path); addErr != nil {
					logging.Warn("failed to watch %s: %v", path, addErr)
				} else {
					count++
				}
			}
			return nil
		})
		if err != nil {
			logging.Warn("failed to walk %s for watching: %v", root, err)
		}
	}
	logging.Debug("watcher started, watching %d directories", count)

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Error("watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	// Ignore hidden files and the sidecar directory; sidecar writes come
	// from this process.
	if strings.Contains(event.Name, string(filepath.Separator)+".") {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(event.Name); err != nil {
				logging.Warn("failed to watch new directory %s: %v", event.Name, err)
			}
		}
	}

	if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0 {
		logging.Debug("filesystem change: %s (%s)", event.Name, event.Op)
		if w.onChange != nil {
			w.onChange()
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
