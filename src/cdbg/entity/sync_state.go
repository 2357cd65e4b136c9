package entity

import (
	"fmt"
	"sync/atomic"
)

// SyncState holds the client side view of one debuggee for one run configuration.
// The snapshot is replaced wholesale on each poll, so readers never observe a partial update.
type SyncState struct {
	// DebuggeeID is fixed for the lifetime of the state.
	DebuggeeID string
	ProjectID  string
	// WorkspaceRoot identifies the owning workspace and is used for notification routing and persistence.
	WorkspaceRoot    string
	RunConfiguration string
	Account          string

	waitToken          atomic.Pointer[string]
	snapshot           atomic.Pointer[[]*Breakpoint]
	listenInBackground atomic.Bool
}

// SyncStateParams are the immutable fields of a SyncState.
type SyncStateParams struct {
	DebuggeeID       string
	ProjectID        string
	WorkspaceRoot    string
	RunConfiguration string
	Account          string
}

// NewSyncState creates an empty SyncState with no wait token.
func NewSyncState(p SyncStateParams) *SyncState {
	s := &SyncState{
		DebuggeeID:       p.DebuggeeID,
		ProjectID:        p.ProjectID,
		WorkspaceRoot:    p.WorkspaceRoot,
		RunConfiguration: p.RunConfiguration,
		Account:          p.Account,
	}
	empty := []*Breakpoint{}
	s.snapshot.Store(&empty)
	return s
}

// Key uniquely identifies the state across workspaces.
func (s *SyncState) Key() string {
	return SyncStateKey(s.WorkspaceRoot, s.RunConfiguration)
}

// SyncStateKey builds the key used for a workspace root and run configuration pair.
func SyncStateKey(workspaceRoot, runConfiguration string) string {
	return fmt.Sprintf("%s#%s", workspaceRoot, runConfiguration)
}

// WaitToken returns the last wait token, or nil if no poll has completed yet.
func (s *SyncState) WaitToken() *string {
	return s.waitToken.Load()
}

// SetWaitToken replaces the wait token. A nil token resets the state to before the first poll.
func (s *SyncState) SetWaitToken(token *string) {
	s.waitToken.Store(token)
}

// CurrentSnapshot returns the breakpoints observed by the most recent poll.
// The returned slice is shared and must not be modified.
func (s *SyncState) CurrentSnapshot() []*Breakpoint {
	return *s.snapshot.Load()
}

// ReplaceSnapshot swaps in a new snapshot. The caller gives up ownership of breakpoints.
func (s *SyncState) ReplaceSnapshot(breakpoints []*Breakpoint) {
	if breakpoints == nil {
		breakpoints = []*Breakpoint{}
	}
	s.snapshot.Store(&breakpoints)
}

// FindInSnapshot returns the breakpoint with the given id from the current snapshot.
func (s *SyncState) FindInSnapshot(id string) (*Breakpoint, bool) {
	for _, bp := range s.CurrentSnapshot() {
		if bp.ID == id {
			return bp, true
		}
	}
	return nil, false
}

// ListenInBackground reports whether the state should keep being polled without an attached IDE session.
func (s *SyncState) ListenInBackground() bool {
	return s.listenInBackground.Load()
}

// SetListenInBackground toggles background polling for this state.
func (s *SyncState) SetListenInBackground(listen bool) {
	s.listenInBackground.Store(listen)
}
