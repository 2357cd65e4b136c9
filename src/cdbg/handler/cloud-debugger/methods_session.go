package clouddebugger

import (
	"context"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ListDebuggees returns the debuggees of a project.
func (r *jsonRPCRouter) ListDebuggees(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ListDebuggeesParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.cloudDebugger.ListDebuggees(ctx, params)
	return r.replyResult(ctx, reply, req, result, err)
}

// Attach starts a debug session for a run configuration and returns its current breakpoints.
func (r *jsonRPCRouter) Attach(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.AttachParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.cloudDebugger.Attach(ctx, params)
	return r.replyResult(ctx, reply, req, result, err)
}

// Detach ends the debug session of a run configuration.
func (r *jsonRPCRouter) Detach(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.DetachParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.cloudDebugger.Detach(ctx, params)
	return r.replyResult(ctx, reply, req, nil, err)
}

// SetListenInBackground toggles background polling of a run configuration.
func (r *jsonRPCRouter) SetListenInBackground(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ListenParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.cloudDebugger.SetListenInBackground(ctx, params)
	return r.replyResult(ctx, reply, req, nil, err)
}
