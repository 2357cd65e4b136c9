package breakpointsync

import "github.com/uber/cdbg-sync/src/cdbg/entity"

// Listener is notified after a poll observed a change. It is called on the polling goroutine.
type Listener interface {
	OnBreakpointListChanged(state *entity.SyncState)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(state *entity.SyncState)

// OnBreakpointListChanged calls f.
func (f ListenerFunc) OnBreakpointListChanged(state *entity.SyncState) { f(state) }

// AuthNotifier surfaces a session fatal authentication failure to the user.
type AuthNotifier interface {
	OnAuthFailure(state *entity.SyncState, err error)
}

// SetBreakpointHandler receives the outcome of SetBreakpointAsync.
type SetBreakpointHandler interface {
	OnSuccess(id string)
	OnError(message string)
}

// ResolveBreakpointHandler receives the outcome of ResolveBreakpointAsync.
type ResolveBreakpointHandler interface {
	OnSuccess(bp *entity.Breakpoint)
	OnError(message string)
}

// SetBreakpointFuncs implements SetBreakpointHandler with optional functions.
type SetBreakpointFuncs struct {
	Success func(id string)
	Error   func(message string)
}

// OnSuccess calls Success if set.
func (h SetBreakpointFuncs) OnSuccess(id string) {
	if h.Success != nil {
		h.Success(id)
	}
}

// OnError calls Error if set.
func (h SetBreakpointFuncs) OnError(message string) {
	if h.Error != nil {
		h.Error(message)
	}
}

// ResolveBreakpointFuncs implements ResolveBreakpointHandler with optional functions.
type ResolveBreakpointFuncs struct {
	Success func(bp *entity.Breakpoint)
	Error   func(message string)
}

// OnSuccess calls Success if set.
func (h ResolveBreakpointFuncs) OnSuccess(bp *entity.Breakpoint) {
	if h.Success != nil {
		h.Success(bp)
	}
}

// OnError calls Error if set.
func (h ResolveBreakpointFuncs) OnError(message string) {
	if h.Error != nil {
		h.Error(message)
	}
}
