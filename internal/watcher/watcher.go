// Package watcher monitors directories for new video files and reports
// directories that have settled, meaning no video activity for a configurable
// delay. Batching per directory avoids acting on half-copied files.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Nomadcxx/jellyrename/internal/logging"
)

// Handler receives settled directories and decides what counts as video.
type Handler interface {
	// HandleSettled is called once per directory after video activity in it
	// has been quiet for the settle delay.
	HandleSettled(dir string) error
	// IsVideoFile reports whether path should count as video activity.
	IsVideoFile(path string) bool
}

type Watcher struct {
	fsWatcher *fsnotify.Watcher
	handler   Handler
	logger    *logging.Logger
	recursive bool
	settle    time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

type Option func(*Watcher)

func WithRecursive(recursive bool) Option {
	return func(w *Watcher) {
		w.recursive = recursive
	}
}

// WithSettleDelay overrides how long a directory must stay quiet before it is
// reported as settled.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.settle = d
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func NewWatcher(handler Handler, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		handler:   handler,
		logger:    logging.Nop(),
		recursive: true,
		settle:    2 * time.Second,
		timers:    make(map[string]*time.Timer),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

func (w *Watcher) Watch(paths []string) error {
	for _, path := range paths {
		if w.recursive {
			if err := w.addRecursive(path); err != nil {
				return err
			}
		} else {
			if err := w.fsWatcher.Add(path); err != nil {
				return fmt.Errorf("unable to watch %s: %w", path, err)
			}
			w.logger.Info("watcher", "watching directory", logging.F("path", path))
		}
	}
	return nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("unable to watch %s: %w", path, err)
		}
		w.logger.Info("watcher", "watching directory", logging.F("path", path))
		return nil
	})
}

func (w *Watcher) Start() error {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("watcher", "event stream error", logging.F("error", err.Error()))
		}
	}
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for dir, timer := range w.timers {
		timer.Stop()
		delete(w.timers, dir)
	}
	w.mu.Unlock()
	return w.fsWatcher.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if w.recursive && !strings.HasPrefix(filepath.Base(event.Name), ".") {
				w.fsWatcher.Add(event.Name)
				w.logger.Info("watcher", "watching new directory", logging.F("path", event.Name))
			}
			return
		}
	}

	if !w.handler.IsVideoFile(event.Name) {
		return
	}

	w.logger.Debug("watcher", "video activity",
		logging.F("op", event.Op.String()),
		logging.F("file", filepath.Base(event.Name)))

	w.bump(filepath.Dir(event.Name))
}

// bump starts or resets the settle timer for dir. The timer firing means the
// directory saw no video activity for the full settle delay.
func (w *Watcher) bump(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bumpLocked(dir)
}

// bumpLocked is bump with w.mu already held. Reset is only safe on a timer
// that Stop caught before it fired; an entry whose timer already fired still
// sits in the map until its callback claims it, and resetting that one would
// both let the stale callback run with no quiet time and fire a second time.
// Such an entry is replaced, and the stale callback backs off when it finds
// it is no longer the timer on record.
func (w *Watcher) bumpLocked(dir string) {
	if w.closed {
		return
	}

	if timer, ok := w.timers[dir]; ok && timer.Stop() {
		timer.Reset(w.settle)
		return
	}

	w.timers[dir] = w.armSettleTimer(dir)
}

// armSettleTimer schedules the settled report for dir after a full quiet
// period. The callback only proceeds while it is still the timer on record.
func (w *Watcher) armSettleTimer(dir string) *time.Timer {
	var timer *time.Timer
	timer = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		owned := !w.closed && w.timers[dir] == timer
		if owned {
			delete(w.timers, dir)
		}
		w.mu.Unlock()
		if !owned {
			return
		}

		w.logger.Info("watcher", "directory settled", logging.F("path", dir))
		if err := w.handler.HandleSettled(dir); err != nil {
			w.logger.Error("watcher", "handler failed", err, logging.F("path", dir))
		}
	})
	return timer
}
