package dataset

import (
	"sync"
	"time"
)

// DefaultSettle is how long file events must stay quiet before a reload runs.
// Editors that write via a temp file and rename emit several events per save;
// a quarter second folds them into one reload.
const DefaultSettle = 250 * time.Millisecond

// Debouncer coalesces rapid calls into one, running the function only after
// the configured duration has elapsed without a new call.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a debouncer with the given settle duration.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Debounce schedules fn after the settle duration. A call while a previous
// fn is still pending replaces it and restarts the clock.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Immediate cancels any pending call and runs fn now, on the caller's
// goroutine.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}
