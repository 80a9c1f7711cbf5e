package shacl

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates the shape cache when local shape files change, so a
// long-running host picks up edited or refreshed shape sets without a
// restart. It watches the shapes directory tree recursively.
type Watcher struct {
	fs     *fsnotify.Watcher
	cache  *Cache
	logger *slog.Logger
	done   chan struct{}
}

// NewWatcher starts watching dir and clears cache on any write, create,
// rename or removal beneath it.
func NewWatcher(dir string, cache *Cache, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fs: fs, cache: cache, logger: logger, done: make(chan struct{})}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fs.Add(path)
		}
		return nil
	})
	if err != nil {
		fs.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.logger.Debug("shape file changed, clearing cache", slog.String("file", ev.Name))
			w.cache.Clear()
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.fs.Add(ev.Name)
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shape watcher error", slog.String("error", err.Error()))
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}
