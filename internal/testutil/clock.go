package testutil

import (
	"sync"
	"time"
)

// FixedClock is a settable clock for tests.
//
// It starts at the given instant and only moves when told to, so dates
// written by the tracker are reproducible across runs.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// NewFixedClockOn creates a clock stopped at noon UTC on the given ISO date.
// Panics on a malformed date; it is only meant for literals in tests.
func NewFixedClockOn(isoDate string) *FixedClock {
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		panic(err)
	}
	return NewFixedClock(d.Add(12 * time.Hour))
}

// Now returns the clock's current instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// AdvanceDays moves the clock forward by n calendar days.
func (c *FixedClock) AdvanceDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, n)
}
