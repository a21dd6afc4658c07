package dataset

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"utilboard/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the export file when it changes on disk and hands the
// result to a callback. It watches the file's parent directory rather than
// the file itself: editors that save via a temp file and rename would
// otherwise detach the watch on the first save.
type Watcher struct {
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	path     string // absolute path of the export file
	dir      string // parent directory registered with fsnotify
	debounce *Debouncer
	onLoad   func(*Snapshot, error)
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	stats WatcherStats
}

// WatcherStats tracks watcher activity for the stats command and debugging.
type WatcherStats struct {
	Events        int
	Reloads       int
	Errors        int
	LastEventTime time.Time
	LastEventOp   string
}

// NewWatcher creates a watcher for the export file at path. onLoad receives
// every reload result, successful or not, and is called from the watcher's
// own goroutines.
func NewWatcher(path string, settle time.Duration, onLoad func(*Snapshot, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if settle <= 0 {
		settle = DefaultSettle
	}

	return &Watcher{
		watcher:  fsw,
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: NewDebouncer(settle),
		onLoad:   onLoad,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start registers the watch and begins delivering reloads. Non-blocking; the
// event loop runs in its own goroutine until Stop or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logging.Watch("watching %s for changes to %s", w.dir, filepath.Base(w.path))

	go w.run(ctx)
	return nil
}

// Stop halts the event loop, drops any pending reload, and releases the
// underlying watch. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.debounce.Cancel()
	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryWatch).Error("close watcher: %v", err)
	}
	logging.Watch("stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			logging.Watch("context cancelled")
			return

		case <-w.stopCh:
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
			logging.Get(logging.CategoryWatch).Error("watch error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		}
	}
}

// handleEvent filters directory noise down to changes of the export file and
// schedules a debounced reload.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	var op string
	switch {
	case event.Op&fsnotify.Create != 0:
		op = "create"
	case event.Op&fsnotify.Write != 0:
		op = "write"
	case event.Op&fsnotify.Remove != 0:
		op = "remove"
	case event.Op&fsnotify.Rename != 0:
		op = "rename"
	default:
		return // chmod and friends
	}

	logging.WatchDebug("%s event for %s", op, event.Name)

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventOp = op
	w.mu.Unlock()

	w.debounce.Debounce(w.reload)
}

// reload loads the file and delivers the result. A load failure is delivered
// too; the consumer decides whether to keep showing the previous snapshot.
func (w *Watcher) reload() {
	snap, err := Load(w.path)

	w.mu.Lock()
	if err != nil {
		w.stats.Errors++
	} else {
		w.stats.Reloads++
	}
	w.mu.Unlock()

	if err != nil {
		logging.Get(logging.CategoryWatch).Error("reload failed: %v", err)
	}
	w.onLoad(snap, err)
}

// TriggerReload bypasses the settle window and reloads now, on the caller's
// goroutine. Used by the dashboard's manual refresh key.
func (w *Watcher) TriggerReload() {
	w.debounce.Immediate(w.reload)
}

// Stats returns a copy of the current counters.
func (w *Watcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching reports whether the event loop is running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// Path returns the absolute path of the watched export file.
func (w *Watcher) Path() string {
	return w.path
}
