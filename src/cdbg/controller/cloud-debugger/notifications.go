package clouddebugger

import (
	"context"
	"fmt"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	ideclient "github.com/uber/cdbg-sync/src/cdbg/gateway/ide-client"
	localbreakpoint "github.com/uber/cdbg-sync/src/cdbg/repository/local-breakpoint"
	"go.lsp.dev/protocol"
)

const _msgAuthFailure = "Cloud Debugger stopped listening for %q: the credentials were rejected. Run `gcloud auth login` and attach again."

var _localMethods = map[localbreakpoint.EventKind]string{
	localbreakpoint.Created: ideclient.MethodLocalBreakpointCreated,
	localbreakpoint.Updated: ideclient.MethodLocalBreakpointUpdated,
	localbreakpoint.Removed: ideclient.MethodLocalBreakpointRemoved,
}

// OnAuthFailure tells every IDE of the workspace that polling stopped and drops cached credentials.
func (c *controller) OnAuthFailure(state *entity.SyncState, err error) {
	c.logger.Errorw("authentication failed", "key", state.Key(), "account", state.Account, "error", err)
	c.cloudSDK.Invalidate()
	c.save(state)

	params := &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeError,
		Message: fmt.Sprintf(_msgAuthFailure, state.RunConfiguration),
	}
	c.broadcast(state.WorkspaceRoot, func(ctx context.Context) error {
		return c.ideGateway.ShowMessage(ctx, params)
	})
}

// breakpointsChanged pushes the new breakpoint list of an attached state.
func (c *controller) breakpointsChanged(state *entity.SyncState) {
	c.notifyChanged(ideclient.MethodBreakpointsChanged, state)
}

// snapshotsAvailable reports a change observed by the global poller for a detached state.
func (c *controller) snapshotsAvailable(state *entity.SyncState) {
	c.notifyChanged(ideclient.MethodSnapshotsAvailable, state)
}

func (c *controller) notifyChanged(method string, state *entity.SyncState) {
	c.save(state)
	params := &entity.BreakpointsChangedParams{
		RunConfiguration: state.RunConfiguration,
		DebuggeeID:       state.DebuggeeID,
		Breakpoints:      state.CurrentSnapshot(),
	}
	c.broadcast(state.WorkspaceRoot, func(ctx context.Context) error {
		return c.ideGateway.Notify(ctx, method, params)
	})
}

// localBreakpointChanged forwards changes the daemon makes to local breakpoints of state.
func (c *controller) localBreakpointChanged(state *entity.SyncState) localbreakpoint.ChangeFunc {
	return func(kind localbreakpoint.EventKind, info entity.LocalBreakpointInfo) {
		params := &entity.LocalBreakpointNotification{
			RunConfiguration: state.RunConfiguration,
			Breakpoint:       info,
		}
		c.broadcast(state.WorkspaceRoot, func(ctx context.Context) error {
			return c.ideGateway.Notify(ctx, _localMethods[kind], params)
		})
	}
}

// broadcast calls send once per registered IDE session of a workspace, with the session UUID in ctx.
func (c *controller) broadcast(workspaceRoot string, send func(ctx context.Context) error) {
	ctx := context.Background()
	sessions, err := c.sessions.GetAllFromWorkspaceRoot(ctx, workspaceRoot)
	if err != nil {
		c.logger.Warnw("looking up sessions", "workspaceRoot", workspaceRoot, "error", err)
		return
	}
	for _, s := range sessions {
		sctx := context.WithValue(ctx, entity.SessionContextKey, s.UUID)
		if err := send(sctx); err != nil {
			c.logger.Warnw("notifying session", "session", s.UUID, "error", err)
		}
	}
}
