package entity

// LocalBreakpoint is the IDE side breakpoint handle.
type LocalBreakpoint interface {
	// ID is stable for the lifetime of the handle.
	ID() string
	// SourceLocation returns nil if the breakpoint has no resolvable position.
	SourceLocation() *SourceLocation
	IsEnabled() bool
	Condition() string
	WatchExpressions() []string
	SetEnabled(enabled bool)
	SetCondition(condition string)
	// SetVerified updates the validation state shown in the IDE. An empty message clears any error.
	SetVerified(verified bool, message string)
}

// LocalBreakpointInfo is a point in time copy of a local breakpoint, as exchanged with the IDE.
type LocalBreakpointInfo struct {
	ID               string          `json:"id"`
	Location         *SourceLocation `json:"location,omitempty"`
	Enabled          bool            `json:"enabled"`
	Condition        string          `json:"condition,omitempty"`
	WatchExpressions []string        `json:"watchExpressions,omitempty"`
	Verified         bool            `json:"verified"`
	Message          string          `json:"message,omitempty"`
}

// LocalBreakpointRecord links a local breakpoint handle to a remote breakpoint id.
type LocalBreakpointRecord struct {
	// RemoteID is empty until the breakpoint has been registered with the backend.
	RemoteID string
	Handle   LocalBreakpoint
	// AddedOnServer is set after a successful registration and prevents registering the same breakpoint twice.
	AddedOnServer bool
	// CreatedByServer marks handles materialized from a poll, which must not be registered back.
	CreatedByServer bool
	// DisabledByServer marks handles disabled because the remote breakpoint captured a snapshot.
	DisabledByServer bool
}
