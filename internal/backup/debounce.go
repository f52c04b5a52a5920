package backup

import (
	"sync"
	"time"

	"github.com/coder/quartz"
)

// Window is the quiescence period the change stream must stay quiet
// before an auto-backup fires
const Window = 5 * time.Second

// Debouncer defers a backup until no mutation has arrived for a full
// window. It holds a single pending slot: a new trigger cancels and
// reschedules the previous one, so only the most recent pending backup
// survives.
type Debouncer struct {
	clock  quartz.Clock
	window time.Duration
	fn     func()

	mu    sync.Mutex
	timer *quartz.Timer
}

// NewDebouncer creates a debouncer invoking fn after the window elapses
func NewDebouncer(clock quartz.Clock, window time.Duration, fn func()) *Debouncer {
	return &Debouncer{clock: clock, window: window, fn: fn}
}

// Trigger restarts the quiescence window
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.window, d.fn)
}

// Stop cancels any pending backup
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
