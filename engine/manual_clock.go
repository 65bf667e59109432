package engine

import (
	"sync"
	"time"
)

// ManualClock is a TimeProvider that only moves when told to. Tests step
// it across pulse and countdown deadlines instead of sleeping.
type ManualClock struct {
	mu      sync.Mutex
	start   time.Time
	elapsed time.Duration
}

// NewManualClock creates a stopped clock positioned at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{start: start}
}

// Now returns the clock's current position
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start.Add(c.elapsed)
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed += d
}
