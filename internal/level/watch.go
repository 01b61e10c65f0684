package level

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/amalg/go-tanks/internal/game"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher re-parses a level file whenever it changes on disk and delivers
// the new grid on Levels. Parse failures go to Errors and the previous level
// stays in play.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	size    int
	logger  *log.Logger

	Levels  chan game.Grid
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still seen.
func Watch(path string, size int, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve level path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create level watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if logger == nil {
		logger = log.Default().WithPrefix("level")
	}
	watcher := &Watcher{
		watcher: w,
		path:    abs,
		size:    size,
		logger:  logger,
		Levels:  make(chan game.Grid, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Levels)
		close(w.Errors)
	})
	return err
}

// run reloads once writes to the file have been quiet for reloadDebounce,
// so a truncate followed by a write yields a single reload.
func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(reloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(w.Errors, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	g, err := LoadFile(w.path, w.size)
	if err != nil {
		w.logger.Warn("level reload failed", "path", w.path, "error", err)
		w.send(w.Errors, err)
		return
	}
	w.logger.Info("level reloaded", "path", w.path)
	select {
	case w.Levels <- g:
	case <-w.closeCh:
	}
}

func (w *Watcher) send(ch chan error, err error) {
	select {
	case ch <- err:
	case <-w.closeCh:
	default:
	}
}
