// Package clouddebugger implements the cdbg-sync business logic: IDE sessions, debug sessions per run configuration
// and the hand over of background listening between them.
package clouddebugger

import (
	"context"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	breakpointbridge "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-bridge"
	breakpointsync "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-sync"
	"github.com/uber/cdbg-sync/src/cdbg/controller/scheduler"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	cloudsdk "github.com/uber/cdbg-sync/src/cdbg/gateway/cloud-sdk"
	debuggerclient "github.com/uber/cdbg-sync/src/cdbg/gateway/debugger-client"
	ideclient "github.com/uber/cdbg-sync/src/cdbg/gateway/ide-client"
	localbreakpoint "github.com/uber/cdbg-sync/src/cdbg/repository/local-breakpoint"
	"github.com/uber/cdbg-sync/src/cdbg/repository/session"
	syncstate "github.com/uber/cdbg-sync/src/cdbg/repository/sync-state"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _nameKey = "cloud-debugger"

// Controller orchestrates the business logic for each request.
type Controller interface {
	// Lifecycle of an IDE connection.
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, id uuid.UUID) error
	Register(ctx context.Context, params *entity.RegisterParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Debug sessions, one per run configuration of the workspace of the calling IDE session.
	ListDebuggees(ctx context.Context, params *entity.ListDebuggeesParams) ([]entity.Debuggee, error)
	Attach(ctx context.Context, params *entity.AttachParams) (*entity.AttachResult, error)
	Detach(ctx context.Context, params *entity.DetachParams) error
	SetListenInBackground(ctx context.Context, params *entity.ListenParams) error

	// Local breakpoint events reported by the IDE.
	BreakpointAdded(ctx context.Context, params *entity.LocalBreakpointParams) (*entity.LocalBreakpointInfo, error)
	BreakpointChanged(ctx context.Context, params *entity.LocalBreakpointParams) (*entity.LocalBreakpointInfo, error)
	BreakpointRemoved(ctx context.Context, params *entity.LocalBreakpointParams) error

	// Snapshots of an attached run configuration.
	ListSnapshots(ctx context.Context, params *entity.SnapshotParams) ([]*entity.Breakpoint, error)
	ResolveSnapshot(ctx context.Context, params *entity.SnapshotParams) (*entity.Breakpoint, error)
	CloneSnapshots(ctx context.Context, params *entity.SnapshotParams) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Sessions    session.Repository
	IdeGateway  ideclient.Gateway
	Registry    debuggerclient.Registry
	CloudSDK    cloudsdk.Gateway
	SyncFactory breakpointsync.Factory
	Poller      scheduler.Poller
	SyncStates  syncstate.Repository
	Stats       tally.Scope
	Logger      *zap.SugaredLogger
	Lifecycle   fx.Lifecycle
}

// debugSession is an attached run configuration with its own polling loop.
type debugSession struct {
	state   *entity.SyncState
	sync    breakpointsync.Controller
	bridge  breakpointbridge.Bridge
	store   localbreakpoint.Store
	gateway debuggerclient.Gateway
}

type controller struct {
	sessions    session.Repository
	ideGateway  ideclient.Gateway
	registry    debuggerclient.Registry
	cloudSDK    cloudsdk.Gateway
	syncFactory breakpointsync.Factory
	poller      scheduler.Poller
	syncStates  syncstate.Repository
	stats       tally.Scope
	logger      *zap.SugaredLogger

	// attachMu serializes changes to the set of debug sessions, which may block on the network.
	attachMu      sync.Mutex
	mu            sync.RWMutex
	debugSessions map[string]*debugSession
}

// New constructs the top-level controller and resumes persisted background listening on start.
func New(p Params) Controller {
	c := &controller{
		sessions:      p.Sessions,
		ideGateway:    p.IdeGateway,
		registry:      p.Registry,
		cloudSDK:      p.CloudSDK,
		syncFactory:   p.SyncFactory,
		poller:        p.Poller,
		syncStates:    p.SyncStates,
		stats:         p.Stats.SubScope("cloud_debugger"),
		logger:        p.Logger.With("plugin", _nameKey),
		debugSessions: make(map[string]*debugSession),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: c.resumeBackground,
		OnStop:  c.closeAll,
	})
	return c
}

// resumeBackground hands persisted states that listen in background to the global poller.
func (c *controller) resumeBackground(ctx context.Context) error {
	states, err := c.syncStates.LoadAll()
	if err != nil {
		c.logger.Warnw("loading persisted sync states", "error", err)
		return nil
	}

	for _, state := range states {
		if !state.ListenInBackground() {
			continue
		}
		gw, err := c.registry.Get(ctx, state.Account)
		if err != nil {
			c.logger.Warnw("resuming background listening", "key", state.Key(), "error", err)
			continue
		}
		if err := c.listenInBackground(gw, state); err != nil {
			c.logger.Warnw("resuming background listening", "key", state.Key(), "error", err)
		}
	}
	return nil
}

// closeAll stops every debug session and background listener, persisting their last state.
func (c *controller) closeAll(ctx context.Context) error {
	c.attachMu.Lock()
	defer c.attachMu.Unlock()

	c.mu.Lock()
	attached := make([]*debugSession, 0, len(c.debugSessions))
	for key, ds := range c.debugSessions {
		attached = append(attached, ds)
		delete(c.debugSessions, key)
	}
	c.mu.Unlock()
	c.stats.Gauge("sessions.attached").Update(0)

	var errs error
	for _, ds := range attached {
		ds.sync.Close()
		errs = multierr.Append(errs, c.syncStates.Save(ds.state))
	}
	for _, state := range c.poller.States() {
		bg, ok := c.poller.Deregister(state.Key())
		if !ok {
			continue
		}
		bg.Close()
		errs = multierr.Append(errs, c.syncStates.Save(state))
	}
	return errs
}

// attached returns the debug session for key, or nil.
func (c *controller) attached(key string) *debugSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.debugSessions[key]
}

// attachedKeys returns the keys of the attached debug sessions of a workspace in order.
func (c *controller) attachedKeys(workspaceRoot string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	for key, ds := range c.debugSessions {
		if ds.state.WorkspaceRoot == workspaceRoot {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (c *controller) setAttached(key string, ds *debugSession) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ds == nil {
		delete(c.debugSessions, key)
	} else {
		c.debugSessions[key] = ds
	}
	c.stats.Gauge("sessions.attached").Update(float64(len(c.debugSessions)))
}
