// Package testutil provides shared helpers for tests.
package testutil

import (
	"sync"
	"time"
)

// Clock is a controllable wall clock for tests.
//
// Inject Clock.Now into a store (store.WithClock) to make elapsed-time
// assertions exact instead of sleeping in tests.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock frozen at the given time.
func NewClock(at time.Time) *Clock {
	return &Clock{now: at}
}

// Now returns the clock's current time without advancing it.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to an absolute time.
func (c *Clock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at
}
