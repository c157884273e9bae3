package atomic

import (
	"sync/atomic"
)

// Counter hands out consecutive ids in [min, max).
// It is safe for concurrent use.
type Counter struct {
	max uint64

	next atomic.Uint64
}

func NewCounter(min, max uint64) *Counter {
	var c Counter
	c.max = max
	c.next.Store(min)
	return &c
}

// Get returns the id the next call to Incr will return.
func (c *Counter) Get() uint64 {
	return c.next.Load()
}

// Incr returns the current id and moves the counter forward.
// It returns false once the counter reaches max.
func (c *Counter) Incr() (uint64, bool) {
	for {
		prev := c.next.Load()
		if prev >= c.max {
			return prev, false
		}

		if c.next.CompareAndSwap(prev, prev+1) {
			return prev, true
		}
	}
}
