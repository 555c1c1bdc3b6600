package function

import (
	"cmp"
	"context"
	"time"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/underbar-go/underbar/collection/queue"
	"github.com/underbar-go/underbar/commonerrors"
)

var epoch = time.Unix(0, 0).UTC()

type timer struct {
	deadline time.Time
	sequence uint64
	f        func()
}

// byDeadline orders timers earliest deadline first, then in scheduling order.
func byDeadline(a, b any) int {
	ta := a.(*timer)
	tb := b.(*timer)
	if c := ta.deadline.Compare(tb.deadline); c != 0 {
		return c
	}
	return cmp.Compare(ta.sequence, tb.sequence)
}

// EventLoop is a cooperative single-threaded timer queue. Callbacks registered
// with Schedule only ever run on the goroutine driving the loop, through
// RunPending, Advance or Run, one at a time.
//
// Panics raised by callbacks are not recovered and propagate to the driver.
type EventLoop struct {
	mu       deadlock.Mutex
	timers   *priorityqueue.Queue
	due      queue.IQueue[*timer]
	sequence *atomic.Uint64
	clock    Clock
	logger   logr.Logger
	wake     chan struct{}
}

// NewEventLoop returns an empty event loop.
func NewEventLoop(opts ...LoopOption) *EventLoop {
	options := WithLoopOptions(opts...)
	return &EventLoop{
		timers:   priorityqueue.NewWith(byDeadline),
		due:      queue.NewThreadSafeQueue[*timer](),
		sequence: atomic.NewUint64(0),
		clock:    options.clock,
		logger:   options.logger.WithName("event-loop"),
		wake:     make(chan struct{}, 1),
	}
}

// Now returns the time of the clock the loop is driven by.
func (l *EventLoop) Now() time.Time {
	return l.clock.Now()
}

// Schedule registers f to run once wait has elapsed. Negative waits are
// treated as zero. Callbacks with equal deadlines run in the order they were
// scheduled. f is never run by Schedule itself, even with a zero wait.
func (l *EventLoop) Schedule(wait time.Duration, f func()) {
	wait = max(wait, 0)
	t := &timer{
		deadline: l.clock.Now().Add(wait),
		sequence: l.sequence.Inc(),
		f:        f,
	}
	l.mu.Lock()
	l.timers.Enqueue(t)
	l.mu.Unlock()
	l.logger.V(1).Info("scheduled callback", "sequence", t.sequence, "wait", wait)
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of callbacks which have not run yet.
func (l *EventLoop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timers.Size() + l.due.Len()
}

// RunPending runs, in order, every callback already due and returns how many
// ran. Callbacks scheduled while doing so are left for a later turn.
func (l *EventLoop) RunPending() int {
	l.collectDue(l.clock.Now())
	return l.runDue()
}

// Advance moves the virtual clock of the loop forward by d, running due
// callbacks deadline after deadline, including the ones they schedule within
// that window. It returns how many callbacks ran.
func (l *EventLoop) Advance(d time.Duration) (total int, err error) {
	clock, ok := l.clock.(*VirtualClock)
	if !ok {
		err = commonerrors.New(commonerrors.ErrUnsupported, "only loops driven by a virtual clock can be advanced")
		return
	}
	target := clock.Now().Add(max(d, 0))
	total = l.RunPending()
	for {
		next, found := l.nextDeadline()
		if !found || next.After(target) {
			break
		}
		clock.Set(next)
		total += l.RunPending()
	}
	clock.Set(target)
	return
}

// Run drives the loop with the wall clock until ctx is done, sleeping until the
// next deadline or until a new callback is scheduled. It returns the reason ctx
// ended, either ErrCancelled or ErrTimeout. Loops driven by a virtual clock
// cannot be run and must be stepped with Advance instead.
func (l *EventLoop) Run(ctx context.Context) error {
	if _, virtual := l.clock.(*VirtualClock); virtual {
		return commonerrors.New(commonerrors.ErrUnsupported, "loops driven by a virtual clock must be advanced rather than run")
	}
	l.logger.Info("event loop started")
	defer l.logger.Info("event loop stopped")
	for {
		if err := commonerrors.DetermineContextError(ctx); err != nil {
			return err
		}
		l.RunPending()

		var alarm <-chan time.Time
		var sleeper *time.Timer
		if next, found := l.nextDeadline(); found {
			sleeper = time.NewTimer(max(next.Sub(l.clock.Now()), 0))
			alarm = sleeper.C
		}
		select {
		case <-ctx.Done():
		case <-l.wake:
		case <-alarm:
		}
		if sleeper != nil {
			sleeper.Stop()
		}
	}
}

func (l *EventLoop) nextDeadline() (deadline time.Time, found bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, found := l.timers.Peek()
	if !found {
		return
	}
	deadline = v.(*timer).deadline
	return
}

func (l *EventLoop) collectDue(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		v, found := l.timers.Peek()
		if !found || v.(*timer).deadline.After(now) {
			return
		}
		_, _ = l.timers.Dequeue()
		l.due.Enqueue(v.(*timer))
	}
}

func (l *EventLoop) runDue() (n int) {
	for t := range l.due.Values() {
		l.logger.V(1).Info("running callback", "sequence", t.sequence)
		t.f()
		n++
	}
	return
}
