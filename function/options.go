package function

import (
	"github.com/go-logr/logr"

	"github.com/underbar-go/underbar/logs"
)

// LoopOptions configures an EventLoop.
type LoopOptions struct {
	clock  Clock
	logger logr.Logger
}

func (o *LoopOptions) Default() *LoopOptions {
	o.clock = RealClock()
	o.logger = logs.NewNoopLogger()
	return o
}

// LoopOption defines an EventLoop option.
type LoopOption func(*LoopOptions) *LoopOptions

// WithClock sets the clock timers are scheduled against. A *VirtualClock
// makes it possible to step time with EventLoop.Advance.
func WithClock(clock Clock) LoopOption {
	return func(o *LoopOptions) *LoopOptions {
		if o == nil {
			o = DefaultLoopOptions()
		}
		if clock != nil {
			o.clock = clock
		}
		return o
	}
}

// WithVirtualClock drives the loop with a virtual clock starting at the Unix epoch.
var WithVirtualClock LoopOption = func(o *LoopOptions) *LoopOptions {
	return WithClock(NewVirtualClock(epoch))(o)
}

// WithLogger sets the logger reporting the loop activity.
func WithLogger(logger logr.Logger) LoopOption {
	return func(o *LoopOptions) *LoopOptions {
		if o == nil {
			o = DefaultLoopOptions()
		}
		if logger.GetSink() != nil {
			o.logger = logger
		}
		return o
	}
}

// WithLoopOptions defines a loop configuration.
func WithLoopOptions(option ...LoopOption) (opts *LoopOptions) {
	for i := range option {
		if option[i] != nil {
			opts = option[i](opts)
		}
	}
	if opts == nil {
		opts = DefaultLoopOptions()
	}
	return
}

// DefaultLoopOptions returns a configuration using the wall clock and no logging.
func DefaultLoopOptions() *LoopOptions {
	opts := &LoopOptions{}
	return opts.Default()
}
