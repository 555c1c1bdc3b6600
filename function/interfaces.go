// Package function provides decorators changing when and how often a function
// is invoked: once only, memoised per argument, or deferred on a scheduler.
//
// Decorators keep their state in a private structure owned by the returned
// function. They follow a single-threaded contract and are not safe for
// concurrent use.
package function

import "time"

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/underbar-go/underbar/$GOPACKAGE Scheduler,Clock,ClockScheduler

// Scheduler schedules callbacks for later execution.
type Scheduler interface {
	// Schedule registers f to be invoked once, after at least wait has elapsed.
	// It never invokes f itself.
	Schedule(wait time.Duration, f func())
}

// Clock tells the time.
type Clock interface {
	Now() time.Time
}

// ClockScheduler is a Scheduler which also tells the time callbacks are scheduled against.
type ClockScheduler interface {
	Scheduler
	Clock
}
