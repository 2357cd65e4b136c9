package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// Session entity representing a single connected IDE.
type Session struct {
	UUID          uuid.UUID      `json:"uuid" zap:"uuid"`
	Conn          *jsonrpc2.Conn `json:"-" zap:"-"`
	WorkspaceRoot string         `json:"workspaceRoot" zap:"workspaceRoot"`
	ClientName    string         `json:"clientName" zap:"clientName"`
	Initialized   bool           `json:"initialized" zap:"initialized"`
}

// RegisterParams are sent by the IDE once after connecting.
type RegisterParams struct {
	WorkspaceRoot string `json:"workspaceRoot"`
	ClientName    string `json:"clientName,omitempty"`
}

// AttachParams select a debuggee for a run configuration.
type AttachParams struct {
	RunConfiguration string `json:"runConfiguration"`
	ProjectID        string `json:"projectId"`
	DebuggeeID       string `json:"debuggeeId"`
	// Account is optional; the active gcloud account is used if empty.
	Account string `json:"account,omitempty"`
}

// AttachResult describes the state after attaching.
type AttachResult struct {
	RunConfiguration string        `json:"runConfiguration"`
	DebuggeeID       string        `json:"debuggeeId"`
	Snapshot         []*Breakpoint `json:"snapshot"`
}

// DetachParams end a debug session.
type DetachParams struct {
	RunConfiguration string `json:"runConfiguration"`
	KeepListening    bool   `json:"keepListening"`
}

// ListDebuggeesParams select the project to list debuggees for.
type ListDebuggeesParams struct {
	ProjectID string `json:"projectId"`
	Account   string `json:"account,omitempty"`
}

// LocalBreakpointParams carry a local breakpoint event from the IDE.
type LocalBreakpointParams struct {
	RunConfiguration string              `json:"runConfiguration"`
	Breakpoint       LocalBreakpointInfo `json:"breakpoint"`
	// URI is the file URI of the breakpoint, used when Breakpoint.Location is not set.
	URI string `json:"uri,omitempty"`
	// Line is the 1-based line used together with URI.
	Line int `json:"line,omitempty"`
	// Temporary is set when the IDE removes the breakpoint only to re-add it, e.g. on disable.
	Temporary bool `json:"temporary,omitempty"`
}

// SnapshotParams select snapshots within a run configuration.
type SnapshotParams struct {
	RunConfiguration string   `json:"runConfiguration"`
	IDs              []string `json:"ids,omitempty"`
}

// ListenParams toggle background listening.
type ListenParams struct {
	RunConfiguration string `json:"runConfiguration"`
	Listen           bool   `json:"listen"`
}

// BreakpointsChangedParams is pushed to the IDE after a poll observed a change.
type BreakpointsChangedParams struct {
	RunConfiguration string        `json:"runConfiguration"`
	DebuggeeID       string        `json:"debuggeeId"`
	Breakpoints      []*Breakpoint `json:"breakpoints"`
}

// LocalBreakpointNotification is pushed to the IDE when the daemon changes a local breakpoint.
type LocalBreakpointNotification struct {
	RunConfiguration string              `json:"runConfiguration"`
	Breakpoint       LocalBreakpointInfo `json:"breakpoint"`
}
