package clouddebugger

import (
	"context"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Register binds the connection to a workspace root. It must precede any other cloudDebugger request.
func (r *jsonRPCRouter) Register(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.RegisterParams](req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.cloudDebugger.Register(ctx, params)
	return r.replyResult(ctx, reply, req, nil, err)
}

// Shutdown asks the server to release the session, but to not exit.
func (r *jsonRPCRouter) Shutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.cloudDebugger.Shutdown(ctx)
	return reply(ctx, nil, err)
}

// Exit ends the session of this connection. The daemon keeps running for other IDEs and background listening.
func (r *jsonRPCRouter) Exit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	// Reply first to ensure that a reply is sent before the session is torn down.
	reply(ctx, nil, nil)
	return r.cloudDebugger.Exit(ctx)
}
