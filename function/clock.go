package function

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// RealClock returns the wall clock.
func RealClock() Clock {
	return realClock{}
}

// VirtualClock is a clock which only moves when told to.
type VirtualClock struct {
	mu  deadlock.RWMutex
	now time.Time
}

// NewVirtualClock returns a virtual clock set at start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

func (c *VirtualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the clock to t. The clock never goes backwards: earlier times are ignored.
func (c *VirtualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.now) {
		c.now = t
	}
}

// Add moves the clock forward by d and returns the new time. Negative durations are ignored.
func (c *VirtualClock) Add(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}
