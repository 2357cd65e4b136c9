package clouddebugger

import (
	"context"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"go.lsp.dev/jsonrpc2"
)

// BreakpointAdded reports a breakpoint created in the IDE.
func (r *jsonRPCRouter) BreakpointAdded(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.LocalBreakpointParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.cloudDebugger.BreakpointAdded(ctx, params)
	return r.replyResult(ctx, reply, req, result, err)
}

// BreakpointChanged reports an edit of a breakpoint in the IDE.
func (r *jsonRPCRouter) BreakpointChanged(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.LocalBreakpointParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.cloudDebugger.BreakpointChanged(ctx, params)
	return r.replyResult(ctx, reply, req, result, err)
}

// BreakpointRemoved reports a breakpoint deleted in the IDE.
func (r *jsonRPCRouter) BreakpointRemoved(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.LocalBreakpointParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.cloudDebugger.BreakpointRemoved(ctx, params)
	return r.replyResult(ctx, reply, req, nil, err)
}

// ListSnapshots returns the breakpoints of the last poll.
func (r *jsonRPCRouter) ListSnapshots(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.SnapshotParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.cloudDebugger.ListSnapshots(ctx, params)
	return r.replyResult(ctx, reply, req, result, err)
}

// ResolveSnapshot returns a fully hydrated snapshot.
func (r *jsonRPCRouter) ResolveSnapshot(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.SnapshotParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.cloudDebugger.ResolveSnapshot(ctx, params)
	return r.replyResult(ctx, reply, req, result, err)
}

// CloneSnapshots recreates editable breakpoints from captured snapshots.
func (r *jsonRPCRouter) CloneSnapshots(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.SnapshotParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.cloudDebugger.CloneSnapshots(ctx, params)
	return r.replyResult(ctx, reply, req, nil, err)
}
