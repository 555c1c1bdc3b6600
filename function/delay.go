package function

import (
	"slices"
	"time"
)

// Delay schedules a single invocation of f with args on s, once wait has
// elapsed, and returns immediately. f is never invoked synchronously, even
// with a zero wait. args are copied so later changes made by the caller to the
// slice are not seen by f. There is no way to cancel the invocation.
func Delay[A any](s Scheduler, wait time.Duration, f func(...A), args ...A) {
	captured := slices.Clone(args)
	s.Schedule(wait, func() {
		f(captured...)
	})
}

// DelayAction is similar to Delay for a function without arguments.
func DelayAction(s Scheduler, wait time.Duration, f func()) {
	s.Schedule(wait, f)
}

// Defer schedules f with args to run on the next turn of s.
func Defer[A any](s Scheduler, f func(...A), args ...A) {
	Delay(s, 0, f, args...)
}

// Delayed returns a function which, every time it is called, schedules an
// invocation of f with the call arguments after wait.
func Delayed[A any](s Scheduler, wait time.Duration, f func(...A)) func(...A) {
	return func(args ...A) {
		Delay(s, wait, f, args...)
	}
}
