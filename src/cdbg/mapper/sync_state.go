package mapper

import (
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/model"
)

// SyncStateToModel maps a SyncState entity to its persisted form.
func SyncStateToModel(s *entity.SyncState) *model.SyncState {
	m := &model.SyncState{
		DebuggeeID:         s.DebuggeeID,
		ProjectID:          s.ProjectID,
		Account:            s.Account,
		ListenInBackground: s.ListenInBackground(),
		Snapshot:           BreakpointsToModels(s.CurrentSnapshot()),
	}
	if token := s.WaitToken(); token != nil {
		t := *token
		m.WaitToken = &t
	}
	return m
}

// ModelToSyncState restores a SyncState entity from its persisted form.
func ModelToSyncState(workspaceRoot, runConfiguration string, m *model.SyncState) *entity.SyncState {
	s := entity.NewSyncState(entity.SyncStateParams{
		DebuggeeID:       m.DebuggeeID,
		ProjectID:        m.ProjectID,
		WorkspaceRoot:    workspaceRoot,
		RunConfiguration: runConfiguration,
		Account:          m.Account,
	})
	if m.WaitToken != nil {
		t := *m.WaitToken
		s.SetWaitToken(&t)
	}
	s.ReplaceSnapshot(ModelsToBreakpoints(m.Snapshot))
	s.SetListenInBackground(m.ListenInBackground)
	return s
}
