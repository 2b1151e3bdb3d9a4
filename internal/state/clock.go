package state

import "sync"

// Clock is a Lamport logical clock shared by all ops a site emits.
type Clock struct {
	counter int64
	mu      sync.Mutex
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counter++
	return c.counter
}

// Update advances the clock past a timestamp observed on a remote op.
func (c *Clock) Update(timestamp int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if timestamp > c.counter {
		c.counter = timestamp
	}
}
