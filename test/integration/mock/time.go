package mock

import (
	"sync"
	"time"
)

// Time is a settable clock for scenarios that depend on the current date,
// such as period summaries.
type Time struct {
	mu      sync.Mutex
	current time.Time
	setAt   time.Time
}

func NewTime() *Time {
	now := time.Now().UTC()
	return &Time{
		current: now,
		setAt:   now,
	}
}

// SetCurrentTime pins the clock to currentTime. It keeps ticking from there.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.setAt = time.Now()
}

// Now returns the pinned time plus whatever has elapsed since it was set.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current.Add(time.Since(t.setAt))
}
