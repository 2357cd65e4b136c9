// Package scheduler polls every SyncState that listens in background without an attached debug session.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/uber-go/tally"
	breakpointsync "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-sync"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/internal/clock"
	workerloop "github.com/uber/cdbg-sync/src/cdbg/internal/worker-loop"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey   = "scheduler"
	_configKey = "debugger"

	_defaultGlobalPollDelay = 2 * time.Second
)

// ChangeFunc is called after a background poll observed a change.
type ChangeFunc func(state *entity.SyncState)

// Poller is the global background poller. Each tick starts a poll for every registered state that
// listens in background, on its own goroutine, with at most one poll in flight per state.
type Poller interface {
	// Register adds c under the key of its state, replacing any previous controller for that key.
	Register(c breakpointsync.Controller, onChange ChangeFunc) error
	// Deregister removes the controller for key and abandons its in-flight poll.
	Deregister(key string) (breakpointsync.Controller, bool)
	Get(key string) (breakpointsync.Controller, bool)
	// States returns the registered states ordered by key.
	States() []*entity.SyncState
}

// Config is the part of the debugger configuration section used by the poller.
type Config struct {
	GlobalPollDelay time.Duration `yaml:"globalPollDelay"`
}

// Params are the dependencies of the Poller.
type Params struct {
	fx.In

	Config    config.Provider
	Clock     clock.Clock
	Stats     tally.Scope
	Logger    *zap.SugaredLogger
	Lifecycle fx.Lifecycle
}

type entry struct {
	controller breakpointsync.Controller
	onChange   ChangeFunc
	cancel     context.CancelFunc
	inFlight   bool
}

type poller struct {
	stats  tally.Scope
	logger *zap.SugaredLogger
	loop   workerloop.Loop

	mu      sync.Mutex
	entries map[string]*entry
	wg      sync.WaitGroup
}

// New creates the Poller and ties its loop to the application lifecycle.
func New(p Params) (Poller, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}
	if cfg.GlobalPollDelay <= 0 {
		cfg.GlobalPollDelay = _defaultGlobalPollDelay
	}

	s := &poller{
		stats:   p.Stats.SubScope(_nameKey),
		logger:  p.Logger.With("plugin", _nameKey),
		entries: make(map[string]*entry),
	}
	s.loop = workerloop.New(p.Clock, cfg.GlobalPollDelay, s.tick)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.loop.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.stop()
			return nil
		},
	})
	return s, nil
}

func (s *poller) Register(c breakpointsync.Controller, onChange ChangeFunc) error {
	state := c.State()
	if state == nil {
		return breakpointsync.ErrNotInitialized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.entries[state.Key()]; ok && prev.cancel != nil {
		prev.cancel()
	}
	s.entries[state.Key()] = &entry{controller: c, onChange: onChange}
	s.logger.Infow("registered background state", "key", state.Key(), "debuggee", state.DebuggeeID)
	return nil
}

func (s *poller) Deregister(key string) (breakpointsync.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if e.cancel != nil {
		e.cancel()
	}
	delete(s.entries, key)
	return e.controller, true
}

func (s *poller) Get(key string) (breakpointsync.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.controller, true
}

func (s *poller) States() []*entity.SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	states := make([]*entity.SyncState, 0, len(keys))
	for _, key := range keys {
		states = append(states, s.entries[key].controller.State())
	}
	return states
}

func (s *poller) tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listening := 0
	for key, e := range s.entries {
		state := e.controller.State()
		if state == nil || !state.ListenInBackground() {
			continue
		}
		listening++
		if e.inFlight {
			continue
		}

		pollCtx, cancel := context.WithCancel(ctx)
		e.inFlight = true
		e.cancel = cancel
		s.wg.Add(1)
		go s.poll(pollCtx, cancel, key, e, state)
	}
	s.stats.Gauge("sessions.listening").Update(float64(listening))
	return nil
}

func (s *poller) poll(ctx context.Context, cancel context.CancelFunc, key string, e *entry, state *entity.SyncState) {
	defer s.wg.Done()
	defer cancel()
	defer func() {
		s.mu.Lock()
		e.inFlight = false
		e.cancel = nil
		s.mu.Unlock()
	}()

	before := state.WaitToken()
	err := e.controller.WaitForChanges(ctx)
	if err != nil {
		s.stats.Counter("poll.error").Inc(1)
		s.logger.Debugw("background poll failed", "key", key, "error", err)
		return
	}
	after := state.WaitToken()
	if before == nil || after == nil || *before == *after {
		return
	}

	s.stats.Counter("poll.changed").Inc(1)
	if e.onChange != nil && ctx.Err() == nil {
		e.onChange(state)
	}
}

func (s *poller) stop() {
	s.loop.Stop()
	s.loop.Wait()

	s.mu.Lock()
	for _, e := range s.entries {
		if e.cancel != nil {
			e.cancel()
		}
	}
	s.mu.Unlock()
	s.wg.Wait()
}
