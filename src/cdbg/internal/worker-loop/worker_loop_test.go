package workerloop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/cdbg-sync/src/cdbg/internal/clock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoopTicksUntilStopped(t *testing.T) {
	var ticks atomic.Int32
	reached := make(chan struct{})
	l := New(clock.New(), time.Millisecond, func(ctx context.Context) error {
		if ticks.Add(1) == 3 {
			close(reached)
		}
		return nil
	})

	require.True(t, l.Start(context.Background()))
	assert.False(t, l.Start(context.Background()), "second start is a no-op")
	assert.True(t, l.Running())

	<-reached
	l.Stop()
	l.Stop()
	l.Wait()

	assert.False(t, l.Running())
	stopped := ticks.Load()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after stop")
}

func TestLoopTicksNeverOverlap(t *testing.T) {
	var inFlight, maxInFlight, ticks atomic.Int32
	reached := make(chan struct{})
	l := New(clock.New(), 0, func(ctx context.Context) error {
		n := inFlight.Add(1)
		if n > maxInFlight.Load() {
			maxInFlight.Store(n)
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		if ticks.Add(1) == 5 {
			close(reached)
		}
		return nil
	})

	l.Start(context.Background())
	<-reached
	l.Stop()
	l.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestLoopErrStop(t *testing.T) {
	var ticks atomic.Int32
	l := New(clock.New(), time.Millisecond, func(ctx context.Context) error {
		ticks.Add(1)
		return ErrStop
	})

	l.Start(context.Background())
	l.Wait()

	assert.Equal(t, int32(1), ticks.Load())
	assert.False(t, l.Running())

	// The loop can be restarted after ending on its own.
	assert.True(t, l.Start(context.Background()))
	l.Wait()
	assert.Equal(t, int32(2), ticks.Load())
}

func TestLoopOtherErrorsKeepTicking(t *testing.T) {
	var ticks atomic.Int32
	reached := make(chan struct{})
	l := New(clock.New(), time.Millisecond, func(ctx context.Context) error {
		if ticks.Add(1) == 2 {
			close(reached)
		}
		return errors.New("io failure")
	})

	l.Start(context.Background())
	<-reached
	l.Stop()
	l.Wait()
	assert.GreaterOrEqual(t, ticks.Load(), int32(2))
}

func TestLoopStopCancelsInFlightTick(t *testing.T) {
	entered := make(chan struct{})
	var cancelled atomic.Bool
	l := New(clock.New(), time.Hour, func(ctx context.Context) error {
		close(entered)
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	})

	l.Start(context.Background())
	<-entered
	l.Stop()
	l.Wait()
	assert.True(t, cancelled.Load())
}

func TestWaitWithoutStart(t *testing.T) {
	l := New(clock.New(), time.Millisecond, func(ctx context.Context) error { return nil })
	assert.NotPanics(t, l.Wait)
	assert.False(t, l.Running())
}
