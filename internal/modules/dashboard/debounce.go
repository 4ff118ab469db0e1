package dashboard

import (
	"sync"
	"time"
)

// Debouncer forwards only the latest value after a quiet period, so a filter
// is not recomputed on every keystroke. The filter itself stays pure; this
// is the only place timing lives.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn(value); a newer call before the delay elapses replaces the
// pending one.
func (d *Debouncer) Do(value string, fn func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { fn(value) })
}

// Stop cancels any pending delivery, e.g. when the view goes away.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
