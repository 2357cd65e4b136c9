package clock

import (
	"time"

	"go.uber.org/fx"
)

// Module provides the wall clock to an Fx application.
var Module = fx.Provide(New)

// Clock is an interface that abstracts the functionality for measuring and waiting on time.
type Clock interface {
	// Sleep pauses the current goroutine for at least the duration d. A negative or zero duration causes Sleep to return immediately.
	Sleep(duration time.Duration)
	// Now returns the current local time.
	Now() time.Time
	// After waits for the duration to elapse and then sends the current time on the returned channel.
	After(duration time.Duration) <-chan time.Time
}

type clock struct{}

// New creates a new instance of Clock.
func New() Clock {
	return clock{}
}

func (clock) Sleep(duration time.Duration) {
	time.Sleep(duration)
}

func (clock) Now() time.Time {
	return time.Now()
}

func (clock) After(duration time.Duration) <-chan time.Time {
	return time.After(duration)
}
