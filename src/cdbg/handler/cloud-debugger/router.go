package clouddebugger

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	controller "github.com/uber/cdbg-sync/src/cdbg/controller/cloud-debugger"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// Inbound methods sent by the IDE.
const (
	MethodRegister              = "cloudDebugger/register"
	MethodAttach                = "cloudDebugger/attach"
	MethodDetach                = "cloudDebugger/detach"
	MethodListDebuggees         = "cloudDebugger/listDebuggees"
	MethodBreakpointAdded       = "cloudDebugger/breakpointAdded"
	MethodBreakpointChanged     = "cloudDebugger/breakpointChanged"
	MethodBreakpointRemoved     = "cloudDebugger/breakpointRemoved"
	MethodListSnapshots         = "cloudDebugger/listSnapshots"
	MethodResolveSnapshot       = "cloudDebugger/resolveSnapshot"
	MethodCloneSnapshots        = "cloudDebugger/cloneSnapshots"
	MethodSetListenInBackground = "cloudDebugger/setListenInBackground"
)

type jsonRPCRouter struct {
	cloudDebugger controller.Controller
	uuid          uuid.UUID
	stats         tally.Scope
	logger        *zap.SugaredLogger
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)

	switch req.Method() {
	// Lifecycle related methods.
	case MethodRegister:
		return r.Register(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	// Debug session methods.
	case MethodListDebuggees:
		return r.ListDebuggees(ctx, reply, req)

	case MethodAttach:
		return r.Attach(ctx, reply, req)

	case MethodDetach:
		return r.Detach(ctx, reply, req)

	case MethodSetListenInBackground:
		return r.SetListenInBackground(ctx, reply, req)

	// Local breakpoint events.
	case MethodBreakpointAdded:
		return r.BreakpointAdded(ctx, reply, req)

	case MethodBreakpointChanged:
		return r.BreakpointChanged(ctx, reply, req)

	case MethodBreakpointRemoved:
		return r.BreakpointRemoved(ctx, reply, req)

	// Snapshot methods.
	case MethodListSnapshots:
		return r.ListSnapshots(ctx, reply, req)

	case MethodResolveSnapshot:
		return r.ResolveSnapshot(ctx, reply, req)

	case MethodCloneSnapshots:
		return r.CloneSnapshots(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// replyResult sends result, or err mapped to a JSON-RPC error.
func (r *jsonRPCRouter) replyResult(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, result interface{}, err error) error {
	if err == nil {
		r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("success").Inc(1)
		return reply(ctx, result, nil)
	}

	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("error").Inc(1)
	r.logger.Debugw("request failed", "session", r.uuid, "method", req.Method(), "error", err)
	if errors.IsBadRequest(err) {
		err = fmt.Errorf("%s: %w", jsonrpc2.ErrInvalidParams, err)
	}
	return reply(ctx, nil, err)
}
