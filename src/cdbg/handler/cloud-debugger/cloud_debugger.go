// Package clouddebugger implements the JSON-RPC API the IDE uses to talk to cdbg-sync.
package clouddebugger

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	controller "github.com/uber/cdbg-sync/src/cdbg/controller/cloud-debugger"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Handler accepts IDE connections and routes their requests to the controller.
type Handler = jsonrpcfx.ConnectionManager

type jsonRPCConnectionManager struct {
	ctrl   controller.Controller
	stats  tally.Scope
	logger *zap.SugaredLogger
}

// New constructs a new cloud debugger Handler and registers it with the JSON-RPC server.
func New(ctrl controller.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope, logger *zap.SugaredLogger) (Handler, error) {
	c := &jsonRPCConnectionManager{
		ctrl:   ctrl,
		stats:  stats.SubScope("json_rpc"),
		logger: logger.With("plugin", "json-rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	return &jsonRPCRouter{
		cloudDebugger: c.ctrl,
		uuid:          id,
		stats:         c.stats,
		logger:        c.logger,
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	if err := c.ctrl.EndSession(ctx, id); err != nil {
		c.logger.Debugw("ending session", "session", id, "error", err)
	}
}
