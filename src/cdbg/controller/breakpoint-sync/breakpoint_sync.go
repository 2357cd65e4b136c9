// Package breakpointsync keeps a SyncState consistent with the remote breakpoint service.
package breakpointsync

import (
	"context"
	stderrors "errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	debuggerclient "github.com/uber/cdbg-sync/src/cdbg/gateway/debugger-client"
	breakpointorder "github.com/uber/cdbg-sync/src/cdbg/internal/breakpoint-order"
	"github.com/uber/cdbg-sync/src/cdbg/internal/clock"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	statusmessage "github.com/uber/cdbg-sync/src/cdbg/internal/status-message"
	workerloop "github.com/uber/cdbg-sync/src/cdbg/internal/worker-loop"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_msgSetFailed       = "The breakpoint could not be created."
	_msgResolveNotFound = "The snapshot could not be found. It may have expired."
	_msgResolveFailed   = "The snapshot could not be loaded."
	_msgNotAttached     = "No debuggee is attached."
)

// ErrNotInitialized is returned by operations that need a bound SyncState.
var ErrNotInitialized = stderrors.New("sync controller has no state")

// Status is the lifecycle position of a Controller.
type Status int

// Controller lifecycle.
const (
	Idle Status = iota
	Initialized
	Listening
	Stopped
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Initialized:
		return "initialized"
	case Listening:
		return "listening"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Controller drives the long poll for one SyncState and brokers remote breakpoint mutations.
type Controller interface {
	// Initialize binds state, resets its wait token and seeds the snapshot with one synchronous poll.
	// The state stays bound when the seed poll fails.
	Initialize(ctx context.Context, state *entity.SyncState) error
	// Resume binds a restored state without resetting its wait token.
	Resume(state *entity.SyncState)
	// State returns the bound state, or nil.
	State() *entity.SyncState
	Status() Status

	// StartBackgroundListening polls on a dedicated goroutine until stopped. Returns false if already listening or unbound.
	StartBackgroundListening() bool
	// StopBackgroundListening cancels the loop and abandons any in-flight poll. It is idempotent.
	StopBackgroundListening()
	// WaitForChanges runs one poll cycle. Expected long poll timeouts return nil.
	WaitForChanges(ctx context.Context) error
	AddListener(l Listener)

	// SetBreakpointAsync replaces any active breakpoint at the same location with bp.
	SetBreakpointAsync(bp *entity.Breakpoint, handler SetBreakpointHandler)
	// ResolveBreakpointAsync returns the hydrated breakpoint for id.
	ResolveBreakpointAsync(id string, handler ResolveBreakpointHandler)
	DeleteBreakpointAsync(id string)
	// DeleteBreakpoint removes a remote breakpoint. An unknown id is not an error.
	DeleteBreakpoint(ctx context.Context, id string) error

	// Close stops listening and waits for outstanding asynchronous work.
	Close()
}

// Options configure a Controller.
type Options struct {
	Gateway  debuggerclient.Gateway
	Notifier AuthNotifier
	Clock    clock.Clock
	Stats    tally.Scope
	Logger   *zap.SugaredLogger
	// PollDelay is the pause between two polls of the background loop.
	PollDelay time.Duration
	// UseWaitToken enables the long poll protocol. Without it every poll returns immediately
	// and changes are detected by comparing snapshots.
	UseWaitToken bool
}

type controller struct {
	gateway      debuggerclient.Gateway
	notifier     AuthNotifier
	stats        tally.Scope
	baseLogger   *zap.SugaredLogger
	useWaitToken bool
	loop         workerloop.Loop
	cache        finalCache

	// pollMu serializes poll cycles, which may come from the background loop and the global poller.
	pollMu sync.Mutex

	mu        sync.Mutex
	state     *entity.SyncState
	logger    *zap.SugaredLogger
	status    Status
	epoch     uint64
	listeners []Listener

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an Idle controller.
func New(opts Options) Controller {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Stats == nil {
		opts.Stats = tally.NoopScope
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &controller{
		gateway:      opts.Gateway,
		notifier:     opts.Notifier,
		stats:        opts.Stats,
		baseLogger:   opts.Logger.With("plugin", _nameKey),
		useWaitToken: opts.UseWaitToken,
		ctx:          ctx,
		cancel:       cancel,
	}
	c.logger = c.baseLogger
	c.loop = workerloop.New(opts.Clock, opts.PollDelay, c.tick)
	return c
}

func (c *controller) Initialize(ctx context.Context, state *entity.SyncState) error {
	if state == nil {
		return ErrNotInitialized
	}
	c.StopBackgroundListening()

	state.SetWaitToken(nil)
	c.bind(state)
	return c.WaitForChanges(ctx)
}

func (c *controller) Resume(state *entity.SyncState) {
	if state == nil {
		return
	}
	c.StopBackgroundListening()
	c.bind(state)
}

func (c *controller) bind(state *entity.SyncState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.state = state
	c.status = Initialized
	c.logger = c.baseLogger.With("debuggee", state.DebuggeeID, "runConfiguration", state.RunConfiguration)
}

func (c *controller) State() *entity.SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controller) log() *zap.SugaredLogger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logger
}

func (c *controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == Listening && !c.loop.Running() {
		return Stopped
	}
	return c.status
}

func (c *controller) StartBackgroundListening() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return false
	}
	if !c.loop.Start(c.ctx) {
		return false
	}
	c.status = Listening
	c.logger.Debug("background listening started")
	return true
}

func (c *controller) StopBackgroundListening() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.loop.Stop()
	if c.status == Listening {
		c.status = Stopped
		c.logger.Debug("background listening stopped")
	}
}

func (c *controller) AddListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

func (c *controller) tick(ctx context.Context) error {
	if err := c.WaitForChanges(ctx); errors.IsAuthFailure(err) || stderrors.Is(err, ErrNotInitialized) {
		return workerloop.ErrStop
	}
	return nil
}

func (c *controller) WaitForChanges(ctx context.Context) error {
	c.pollMu.Lock()
	defer c.pollMu.Unlock()

	c.mu.Lock()
	state, epoch, logger := c.state, c.epoch, c.logger
	c.mu.Unlock()
	if state == nil {
		return ErrNotInitialized
	}

	sent := state.WaitToken()
	var token *string
	if c.useWaitToken {
		token = sent
	}

	result, err := c.gateway.ListBreakpoints(ctx, state.DebuggeeID, token)
	if errors.IsConflict(err) {
		c.stats.Counter("poll.conflict").Inc(1)
		logger.Debug("breakpoint list changed during poll, retrying")
		result, err = c.gateway.ListBreakpoints(ctx, state.DebuggeeID, token)
	}
	if err != nil {
		return c.pollFailed(ctx, state, logger, err)
	}

	snapshot := breakpointorder.Sorted(result.Breakpoints)
	next := result.NextWaitToken
	if !c.useWaitToken {
		next = fingerprint(snapshot)
	}

	c.mu.Lock()
	if c.epoch != epoch || c.state != state {
		c.mu.Unlock()
		logger.Debug("discarding poll result after stop")
		return nil
	}
	state.ReplaceSnapshot(snapshot)
	state.SetWaitToken(&next)
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	c.stats.Counter("poll.success").Inc(1)
	if sent == nil || *sent == next {
		return nil
	}

	c.stats.Counter("poll.changed").Inc(1)
	if pruned := c.cache.retain(snapshot); pruned > 0 {
		logger.Debugw("pruned final breakpoint cache", "removed", pruned)
	}
	for _, l := range listeners {
		l.OnBreakpointListChanged(state)
	}
	return nil
}

func (c *controller) pollFailed(ctx context.Context, state *entity.SyncState, logger *zap.SugaredLogger, err error) error {
	switch {
	case ctx.Err() != nil:
		return nil
	case errors.IsTimeout(err):
		c.stats.Counter("poll.timeout").Inc(1)
		logger.Debug("long poll timed out without changes")
		return nil
	case errors.IsAuthFailure(err):
		c.stats.Counter("poll.auth_failure").Inc(1)
		state.SetListenInBackground(false)
		logger.Errorw("authentication failed, background listening disabled", "error", err)
		if c.notifier != nil {
			c.notifier.OnAuthFailure(state, err)
		}
		return err
	default:
		c.stats.Counter("poll.io_failure").Inc(1)
		logger.Warnw("polling breakpoints failed", "error", err)
		return err
	}
}

func (c *controller) SetBreakpointAsync(bp *entity.Breakpoint, handler SetBreakpointHandler) {
	c.goAsync(func(ctx context.Context) {
		state := c.State()
		if state == nil {
			handler.OnError(_msgNotAttached)
			return
		}

		if err := c.deleteActiveAt(ctx, state, bp.Location); err != nil {
			c.log().Warnw("removing breakpoints at the same location failed", "location", bp.Location, "error", err)
		}

		created, err := c.gateway.SetBreakpoint(ctx, state.DebuggeeID, bp)
		if err != nil {
			c.stats.Counter("set.error").Inc(1)
			if msg, ok := errors.RejectedMessage(err); ok {
				handler.OnError(msg)
				return
			}
			c.log().Warnw("creating breakpoint failed", "error", err)
			handler.OnError(_msgSetFailed)
			return
		}
		if created.HasError() {
			c.stats.Counter("set.error").Inc(1)
			handler.OnError(statusmessage.FormatOr(created.Status, _msgSetFailed))
			return
		}

		c.stats.Counter("set.success").Inc(1)
		handler.OnSuccess(created.ID)
	})
}

// deleteActiveAt removes every non final breakpoint of the current snapshot at loc.
func (c *controller) deleteActiveAt(ctx context.Context, state *entity.SyncState, loc *entity.SourceLocation) error {
	if !loc.Valid() {
		return nil
	}

	var errs error
	for _, existing := range state.CurrentSnapshot() {
		if existing.IsFinalState || existing.ID == "" || !existing.Location.Equal(loc) {
			continue
		}
		if err := c.DeleteBreakpoint(ctx, existing.ID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("deleting %q: %w", existing.ID, err))
		}
	}
	return errs
}

func (c *controller) ResolveBreakpointAsync(id string, handler ResolveBreakpointHandler) {
	if bp, ok := c.cache.get(id); ok {
		c.stats.Counter("resolve.cache_hit").Inc(1)
		handler.OnSuccess(bp)
		return
	}

	state := c.State()
	if state == nil {
		handler.OnError(_msgNotAttached)
		return
	}
	if bp, ok := state.FindInSnapshot(id); ok && !bp.IsFinalState {
		handler.OnSuccess(bp)
		return
	}

	c.goAsync(func(ctx context.Context) {
		bp, err := c.gateway.GetBreakpoint(ctx, state.DebuggeeID, id)
		if err != nil {
			if errors.IsNotFound(err) {
				handler.OnError(_msgResolveNotFound)
				return
			}
			c.log().Warnw("loading snapshot failed", "id", id, "error", err)
			handler.OnError(_msgResolveFailed)
			return
		}
		if bp.IsFinalState {
			c.cache.put(bp)
		}
		handler.OnSuccess(bp)
	})
}

func (c *controller) DeleteBreakpointAsync(id string) {
	c.goAsync(func(ctx context.Context) {
		if err := c.DeleteBreakpoint(ctx, id); err != nil {
			c.log().Warnw("deleting breakpoint failed", "id", id, "error", err)
		}
	})
}

func (c *controller) DeleteBreakpoint(ctx context.Context, id string) error {
	state := c.State()
	if state == nil {
		return ErrNotInitialized
	}

	err := c.gateway.DeleteBreakpoint(ctx, state.DebuggeeID, id)
	if err != nil && !errors.IsNotFound(err) {
		return err
	}
	c.stats.Counter("delete.success").Inc(1)
	return nil
}

func (c *controller) Close() {
	c.StopBackgroundListening()
	c.cancel()
	c.loop.Wait()
	c.wg.Wait()
}

// goAsync runs fn on its own goroutine. fn's context is cancelled by Close.
func (c *controller) goAsync(fn func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn(c.ctx)
	}()
}

// fingerprint identifies a snapshot by the ids and final flags of its breakpoints.
func fingerprint(snapshot []*entity.Breakpoint) string {
	h := fnv.New64a()
	for _, bp := range snapshot {
		h.Write([]byte(bp.ID))
		if bp.IsFinalState {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
