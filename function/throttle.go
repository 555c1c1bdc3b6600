package function

import (
	"slices"
	"time"
)

type throttler[A any] struct {
	loop        ClockScheduler
	wait        time.Duration
	f           func(...A)
	called      bool
	lastCall    time.Time
	trailing    bool
	trailingArg []A
}

func (t *throttler[A]) call(args ...A) {
	if t.trailing {
		t.trailingArg = slices.Clone(args)
		return
	}
	now := t.loop.Now()
	if !t.called || !now.Before(t.lastCall.Add(t.wait)) {
		t.called = true
		t.lastCall = now
		t.f(args...)
		return
	}
	t.trailing = true
	t.trailingArg = slices.Clone(args)
	t.loop.Schedule(t.lastCall.Add(t.wait).Sub(now), t.flush)
}

func (t *throttler[A]) flush() {
	args := t.trailingArg
	t.trailing = false
	t.trailingArg = nil
	t.lastCall = t.loop.Now()
	t.f(args...)
}

// Throttle returns a function invoking f at most once per wait. The first call
// invokes f straight away. Calls made during the following wait are coalesced
// into a single call scheduled on loop at the end of that wait, with the
// arguments of the most recent of them.
func Throttle[A any](loop ClockScheduler, wait time.Duration, f func(...A)) func(...A) {
	t := &throttler[A]{
		loop: loop,
		wait: max(wait, 0),
		f:    f,
	}
	return t.call
}
