package factory

import (
	"fmt"
	"math/rand"

	"github.com/gofrs/uuid"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// ActiveBreakpoint returns a non-final breakpoint with a random id at the given location.
func ActiveBreakpoint(path string, line int) *entity.Breakpoint {
	return &entity.Breakpoint{
		ID:       fmt.Sprintf("bp-%d", rand.Int63()),
		Location: &entity.SourceLocation{Path: path, Line: line},
	}
}

// FinalBreakpoint returns a captured breakpoint with a random id at the given location and capture time.
func FinalBreakpoint(path string, line int, finalTime string) *entity.Breakpoint {
	bp := ActiveBreakpoint(path, line)
	bp.IsFinalState = true
	bp.FinalTime = finalTime
	return bp
}

// SyncState returns an empty sync state for a random debuggee.
func SyncState(workspaceRoot, runConfiguration string) *entity.SyncState {
	return entity.NewSyncState(entity.SyncStateParams{
		DebuggeeID:       fmt.Sprintf("debuggee-%d", rand.Int63()),
		ProjectID:        "sample-project",
		WorkspaceRoot:    workspaceRoot,
		RunConfiguration: runConfiguration,
	})
}
