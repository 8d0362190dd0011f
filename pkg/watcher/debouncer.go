// Package watcher provides debounced watching of a theme override file
// so the gallery can restyle itself while the file is being edited.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default coalescing window. Editors often write
// a file several times per save; one window covers all of them.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback. Only the
// callback from the most recent Trigger within the window runs.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a debouncer; a zero window means DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the window elapses, replacing any
// previously scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		// A fired timer may race with a newer Trigger or Cancel; the
		// generation check keeps only the latest callback alive.
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
	d.mu.Unlock()
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the coalescing window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
