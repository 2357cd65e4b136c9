// Package workerloop runs a function repeatedly on a dedicated goroutine, waiting a fixed delay after each call returns.
package workerloop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/uber/cdbg-sync/src/cdbg/internal/clock"
)

// ErrStop may be returned by a TickFunc to end the loop.
var ErrStop = errors.New("stop worker loop")

// TickFunc is invoked once per tick. The context is cancelled when the loop is stopped.
type TickFunc func(ctx context.Context) error

// Loop is a self-throttling periodic driver. A tick is only scheduled after the previous one returned,
// so ticks never overlap.
type Loop interface {
	// Start begins ticking. It is a no-op if the loop is already running.
	Start(ctx context.Context) bool
	// Stop cancels the running loop without waiting for an in-flight tick. It is idempotent.
	Stop()
	// Wait blocks until the goroutine started by the last Start has exited.
	Wait()
	// Running reports whether the loop has been started and not yet stopped.
	Running() bool
}

type loop struct {
	clock clock.Clock
	delay time.Duration
	tick  TickFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a stopped Loop which calls tick and then waits delay before the next call.
func New(c clock.Clock, delay time.Duration, tick TickFunc) Loop {
	return &loop{
		clock: c,
		delay: delay,
		tick:  tick,
	}
}

func (l *loop) Start(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	go func() {
		defer close(done)
		defer l.finish(done)
		l.run(ctx)
	}()
	return true
}

func (l *loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *loop) Wait() {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (l *loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

func (l *loop) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := l.tick(ctx); errors.Is(err, ErrStop) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-l.clock.After(l.delay):
		}
	}
}

// finish clears the running state when the loop ends by itself, unless a newer Start has replaced it.
func (l *loop) finish(done chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done == done && l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
