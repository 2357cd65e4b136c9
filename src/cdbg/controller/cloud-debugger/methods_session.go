package clouddebugger

import (
	"context"
	"fmt"

	breakpointbridge "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-bridge"
	breakpointsync "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-sync"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	debuggerclient "github.com/uber/cdbg-sync/src/cdbg/gateway/debugger-client"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	localbreakpoint "github.com/uber/cdbg-sync/src/cdbg/repository/local-breakpoint"
)

// ListDebuggees returns the debuggees of a project the IDE can attach to.
func (c *controller) ListDebuggees(ctx context.Context, params *entity.ListDebuggeesParams) ([]entity.Debuggee, error) {
	if params.ProjectID == "" {
		return nil, errors.New("project id is required")
	}
	gw, err := c.registry.Get(ctx, params.Account)
	if err != nil {
		return nil, err
	}
	return gw.ListDebuggees(ctx, params.ProjectID)
}

// Attach starts a debug session for a run configuration. A state listening in background, or persisted from an
// earlier run, is taken over when it belongs to the same debuggee.
func (c *controller) Attach(ctx context.Context, params *entity.AttachParams) (*entity.AttachResult, error) {
	if params.RunConfiguration == "" {
		return nil, errors.MissingRunConfigurationError
	}
	if params.DebuggeeID == "" {
		return nil, errors.New("debuggee id is required")
	}
	workspaceRoot, err := c.workspaceRoot(ctx)
	if err != nil {
		return nil, err
	}

	c.attachMu.Lock()
	defer c.attachMu.Unlock()

	key := entity.SyncStateKey(workspaceRoot, params.RunConfiguration)
	if ds := c.attached(key); ds != nil {
		if ds.state.DebuggeeID == params.DebuggeeID {
			return attachResult(ds.state), nil
		}
		if err := c.detachLocked(ds, false); err != nil {
			c.logger.Warnw("detaching previous debuggee", "key", key, "error", err)
		}
	}

	state := c.takeState(workspaceRoot, params)
	gw, err := c.registry.Get(ctx, state.Account)
	if err != nil {
		c.stats.Counter("attach.error").Inc(1)
		return nil, err
	}

	ds := c.newDebugSession(gw, state)
	if err := ds.sync.Initialize(ctx, state); err != nil {
		if errors.IsAuthFailure(err) {
			ds.sync.Close()
			c.stats.Counter("attach.error").Inc(1)
			return nil, fmt.Errorf("attaching to %q: %w", params.DebuggeeID, err)
		}
		c.logger.Warnw("initial poll failed", "key", key, "error", err)
	}
	// The seed poll does not notify listeners.
	ds.bridge.ReconcileIncoming(state.CurrentSnapshot())
	ds.sync.StartBackgroundListening()

	c.setAttached(key, ds)
	c.save(state)
	c.stats.Counter("attach.success").Inc(1)
	c.logger.Infow("attached", "key", key, "debuggee", state.DebuggeeID, "account", state.Account)
	return attachResult(state), nil
}

// Detach ends the debug session of a run configuration.
func (c *controller) Detach(ctx context.Context, params *entity.DetachParams) error {
	if params.RunConfiguration == "" {
		return errors.MissingRunConfigurationError
	}
	workspaceRoot, err := c.workspaceRoot(ctx)
	if err != nil {
		return err
	}

	c.attachMu.Lock()
	defer c.attachMu.Unlock()

	ds := c.attached(entity.SyncStateKey(workspaceRoot, params.RunConfiguration))
	if ds == nil {
		return &errors.RunConfigurationNotFoundError{WorkspaceRoot: workspaceRoot, RunConfiguration: params.RunConfiguration}
	}
	return c.detachLocked(ds, params.KeepListening)
}

// SetListenInBackground toggles whether a run configuration keeps being polled after it is detached.
func (c *controller) SetListenInBackground(ctx context.Context, params *entity.ListenParams) error {
	if params.RunConfiguration == "" {
		return errors.MissingRunConfigurationError
	}
	workspaceRoot, err := c.workspaceRoot(ctx)
	if err != nil {
		return err
	}

	c.attachMu.Lock()
	defer c.attachMu.Unlock()

	key := entity.SyncStateKey(workspaceRoot, params.RunConfiguration)
	if ds := c.attached(key); ds != nil {
		ds.state.SetListenInBackground(params.Listen)
		c.save(ds.state)
		return nil
	}

	if _, ok := c.poller.Get(key); !ok {
		return &errors.RunConfigurationNotFoundError{WorkspaceRoot: workspaceRoot, RunConfiguration: params.RunConfiguration}
	}
	if params.Listen {
		return nil
	}
	if bg, ok := c.poller.Deregister(key); ok {
		bg.Close()
	}
	return c.syncStates.Delete(workspaceRoot, params.RunConfiguration)
}

// detachLocked stops ds. With keepListening the state moves to the global poller, otherwise it is forgotten.
// Must be called with attachMu held.
func (c *controller) detachLocked(ds *debugSession, keepListening bool) error {
	state := ds.state
	c.setAttached(state.Key(), nil)
	ds.sync.Close()
	c.logger.Infow("detached", "key", state.Key(), "keepListening", keepListening)

	if !keepListening {
		state.SetListenInBackground(false)
		return c.syncStates.Delete(state.WorkspaceRoot, state.RunConfiguration)
	}

	state.SetListenInBackground(true)
	c.save(state)
	return c.listenInBackground(ds.gateway, state)
}

// listenInBackground registers a new controller for state with the global poller.
func (c *controller) listenInBackground(gw debuggerclient.Gateway, state *entity.SyncState) error {
	bg := c.syncFactory.New(gw, c)
	bg.Resume(state)
	if err := c.poller.Register(bg, c.snapshotsAvailable); err != nil {
		bg.Close()
		return err
	}
	return nil
}

// takeState returns the state to attach for params, reusing a background or persisted state of the same debuggee.
// Must be called with attachMu held.
func (c *controller) takeState(workspaceRoot string, params *entity.AttachParams) *entity.SyncState {
	key := entity.SyncStateKey(workspaceRoot, params.RunConfiguration)

	var previous *entity.SyncState
	if bg, ok := c.poller.Deregister(key); ok {
		previous = bg.State()
		bg.Close()
	} else if restored, err := c.syncStates.Load(workspaceRoot, params.RunConfiguration); err == nil {
		previous = restored
	} else if !errors.IsRunConfigurationNotFound(err) {
		c.logger.Warnw("loading persisted sync state", "key", key, "error", err)
	}

	if previous != nil && previous.DebuggeeID == params.DebuggeeID && (params.Account == "" || params.Account == previous.Account) {
		return previous
	}
	return entity.NewSyncState(entity.SyncStateParams{
		DebuggeeID:       params.DebuggeeID,
		ProjectID:        params.ProjectID,
		WorkspaceRoot:    workspaceRoot,
		RunConfiguration: params.RunConfiguration,
		Account:          params.Account,
	})
}

func (c *controller) newDebugSession(gw debuggerclient.Gateway, state *entity.SyncState) *debugSession {
	sc := c.syncFactory.New(gw, c)
	store := localbreakpoint.New(c.localBreakpointChanged(state))
	bridge := breakpointbridge.New(breakpointbridge.Options{
		Controller: sc,
		Store:      store,
		Stats:      c.stats,
		Logger:     c.logger,
	})
	sc.AddListener(bridge)
	sc.AddListener(breakpointsync.ListenerFunc(c.breakpointsChanged))

	return &debugSession{
		state:   state,
		sync:    sc,
		bridge:  bridge,
		store:   store,
		gateway: gw,
	}
}

// lookup returns the attached session of a run configuration in the workspace of ctx.
func (c *controller) lookup(ctx context.Context, runConfiguration string) (*debugSession, string, error) {
	if runConfiguration == "" {
		return nil, "", errors.MissingRunConfigurationError
	}
	workspaceRoot, err := c.workspaceRoot(ctx)
	if err != nil {
		return nil, "", err
	}
	ds := c.attached(entity.SyncStateKey(workspaceRoot, runConfiguration))
	if ds == nil {
		return nil, "", &errors.RunConfigurationNotFoundError{WorkspaceRoot: workspaceRoot, RunConfiguration: runConfiguration}
	}
	return ds, workspaceRoot, nil
}

func (c *controller) save(state *entity.SyncState) {
	if err := c.syncStates.Save(state); err != nil {
		c.logger.Warnw("persisting sync state", "key", state.Key(), "error", err)
	}
}

func attachResult(state *entity.SyncState) *entity.AttachResult {
	return &entity.AttachResult{
		RunConfiguration: state.RunConfiguration,
		DebuggeeID:       state.DebuggeeID,
		Snapshot:         state.CurrentSnapshot(),
	}
}
