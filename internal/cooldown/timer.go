package cooldown

import "time"

// Timer counts a cooldown down to zero. The zero value is idle.
//
// A Timer is not safe for concurrent use; the owning session serializes
// every call.
type Timer struct {
	running   bool
	remaining time.Duration
	total     time.Duration
}

// Start (re)arms the timer for d. Non-positive durations are ignored.
func (t *Timer) Start(d time.Duration) {
	if d <= 0 {
		return
	}
	t.total = d
	t.remaining = d
	t.running = true
}

// Stop returns the timer to idle and clears its duration.
func (t *Timer) Stop() {
	t.running = false
	t.remaining = 0
	t.total = 0
}

func (t *Timer) Reset() { t.Stop() }

// Reduce takes d off the remaining time of a running timer. It reports
// whether this call expired the timer.
func (t *Timer) Reduce(d time.Duration) bool {
	if !t.running || t.remaining <= 0 || d <= 0 {
		return false
	}
	return t.advance(d)
}

// Tick advances a running timer by delta and reports whether it expired.
func (t *Timer) Tick(delta time.Duration) bool {
	if !t.running || delta <= 0 {
		return false
	}
	return t.advance(delta)
}

func (t *Timer) advance(d time.Duration) bool {
	t.remaining = max(0, t.remaining-d)
	if t.remaining > 0 {
		return false
	}
	// total is kept so Progress reads 100 until the next Start or Stop
	t.running = false
	return true
}

func (t Timer) Running() bool            { return t.running }
func (t Timer) Remaining() time.Duration { return t.remaining }
func (t Timer) Total() time.Duration     { return t.total }

// Progress is the elapsed share of the current duration, 0..100.
func (t Timer) Progress() float64 {
	if t.total <= 0 {
		return 0
	}
	return float64(t.total-t.remaining) / float64(t.total) * 100
}
