package model

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// Session is the repository layer model for an individual IDE session.
type Session struct {
	UUID          uuid.UUID
	Conn          *jsonrpc2.Conn
	WorkspaceRoot string
	ClientName    string
	Initialized   bool
}

// SyncStateFile is the persisted content for a single workspace, keyed by run configuration name.
type SyncStateFile struct {
	WorkspaceRoot string                `yaml:"workspaceRoot"`
	States        map[string]*SyncState `yaml:"states"`
}

// SyncState is the persisted form of a SyncState entity.
type SyncState struct {
	DebuggeeID         string        `yaml:"debuggeeId"`
	ProjectID          string        `yaml:"projectId"`
	Account            string        `yaml:"account,omitempty"`
	WaitToken          *string       `yaml:"waitToken,omitempty"`
	ListenInBackground bool          `yaml:"listenInBackground"`
	Snapshot           []*Breakpoint `yaml:"snapshot,omitempty"`
}
