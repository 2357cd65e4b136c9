package clouddebugger

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/multierr"
)

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	s := mapper.UUIDToSession(id, conn)
	if err := c.ideGateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}
	if err := c.sessions.Set(ctx, s); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// EndSession includes any cleanup at the end of the session, during or after the last JSON-RPC request.
// When the last session of a workspace ends, its debug sessions are detached and keep listening if they were asked to.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	s, err := c.sessions.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := c.ideGateway.DeregisterClient(ctx, id); err != nil {
		c.logger.Error(err)
	}
	if err := c.sessions.Delete(ctx, id); err != nil {
		return err
	}
	if !s.Initialized {
		return nil
	}

	remaining, err := c.sessions.GetAllFromWorkspaceRoot(ctx, s.WorkspaceRoot)
	if err != nil {
		return fmt.Errorf("looking up sessions of %q: %w", s.WorkspaceRoot, err)
	}
	if len(remaining) > 0 {
		return nil
	}

	c.attachMu.Lock()
	defer c.attachMu.Unlock()

	var errs error
	for _, key := range c.attachedKeys(s.WorkspaceRoot) {
		ds := c.attached(key)
		errs = multierr.Append(errs, c.detachLocked(ds, ds.state.ListenInBackground()))
	}
	return errs
}

// Register binds the session in ctx to a workspace root. Debug session requests are rejected until it is called.
func (c *controller) Register(ctx context.Context, params *entity.RegisterParams) error {
	if params.WorkspaceRoot == "" {
		return errors.New("workspace root is required")
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	s.WorkspaceRoot = params.WorkspaceRoot
	s.ClientName = params.ClientName
	s.Initialized = true
	if err := c.sessions.Set(ctx, s); err != nil {
		return err
	}

	c.logger.Infow("session registered", "session", s.UUID, "workspaceRoot", s.WorkspaceRoot, "client", s.ClientName)
	return nil
}

// Shutdown precedes Exit. Debug sessions stay attached until the session ends.
func (c *controller) Shutdown(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	c.logger.Infow("shutdown requested", "session", s.UUID)
	return nil
}

// Exit cleans up the session in ctx.
func (c *controller) Exit(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}
	return c.EndSession(ctx, s.UUID)
}

// workspaceRoot returns the workspace of the registered session in ctx.
func (c *controller) workspaceRoot(ctx context.Context) (string, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return "", err
	}
	if !s.Initialized || s.WorkspaceRoot == "" {
		return "", errors.SessionNotRegisteredError
	}
	return s.WorkspaceRoot, nil
}
