// Package entity contains the domain types for the cdbg-sync daemon.
package entity

import "slices"

// SourceLocation identifies a single line within a source file.
type SourceLocation struct {
	// Path is slash separated and relative to the root of the deployed sources.
	Path string `json:"path" yaml:"path"`
	// Line is 1-based.
	Line int `json:"line" yaml:"line"`
}

// Valid reports whether the location can be resolved to a line in a source file.
func (l *SourceLocation) Valid() bool {
	return l != nil && l.Path != "" && l.Line > 0
}

// Equal reports whether both locations point at the same path and line.
func (l *SourceLocation) Equal(other *SourceLocation) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.Path == other.Path && l.Line == other.Line
}

// FormatMessage is a templated message where $0, $1, ... are replaced by Parameters.
type FormatMessage struct {
	Format     string   `json:"format" yaml:"format"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// StatusMessage carries an error or informational status reported by the debugger backend.
type StatusMessage struct {
	IsError     bool          `json:"isError" yaml:"isError"`
	RefersTo    string        `json:"refersTo,omitempty" yaml:"refersTo,omitempty"`
	Description FormatMessage `json:"description" yaml:"description"`
}

// Variable is a captured value, possibly with nested members.
type Variable struct {
	Name          string         `json:"name,omitempty"`
	Value         string         `json:"value,omitempty"`
	Type          string         `json:"type,omitempty"`
	Members       []Variable     `json:"members,omitempty"`
	VarTableIndex *int           `json:"varTableIndex,omitempty"`
	Status        *StatusMessage `json:"status,omitempty"`
}

// StackFrame is a single captured call frame.
type StackFrame struct {
	Function  string          `json:"function,omitempty"`
	Location  *SourceLocation `json:"location,omitempty"`
	Arguments []Variable      `json:"arguments,omitempty"`
	Locals    []Variable      `json:"locals,omitempty"`
}

// Breakpoint is a logical breakpoint tracked by the remote debugging service.
// A breakpoint becomes read-only once IsFinalState is set; it then represents a captured snapshot.
type Breakpoint struct {
	// ID is assigned by the remote service and is empty until the breakpoint has been created.
	ID           string          `json:"id,omitempty"`
	Location     *SourceLocation `json:"location,omitempty"`
	Condition    string          `json:"condition,omitempty"`
	Expressions  []string        `json:"expressions,omitempty"`
	IsFinalState bool            `json:"isFinalState,omitempty"`
	CreateTime   string          `json:"createTime,omitempty"`
	// FinalTime is only set once IsFinalState is true.
	FinalTime string         `json:"finalTime,omitempty"`
	UserEmail string         `json:"userEmail,omitempty"`
	Status    *StatusMessage `json:"status,omitempty"`

	// Captured state, only populated on a fully hydrated final breakpoint.
	StackFrames          []StackFrame `json:"stackFrames,omitempty"`
	EvaluatedExpressions []Variable   `json:"evaluatedExpressions,omitempty"`
	VariableTable        []Variable   `json:"variableTable,omitempty"`
}

// HasFinalTime reports whether the breakpoint has recorded a capture time.
func (b *Breakpoint) HasFinalTime() bool {
	return b.FinalTime != ""
}

// IsActive reports whether the breakpoint is still waiting to be hit.
func (b *Breakpoint) IsActive() bool {
	return !b.IsFinalState
}

// HasError reports whether the backend attached an error status to the breakpoint.
func (b *Breakpoint) HasError() bool {
	return b.Status != nil && b.Status.IsError
}

// CloneDefinition returns a new breakpoint with the same location, condition and expressions, without an id or captured state.
func (b *Breakpoint) CloneDefinition() *Breakpoint {
	clone := &Breakpoint{
		Condition:   b.Condition,
		Expressions: slices.Clone(b.Expressions),
	}
	if b.Location != nil {
		loc := *b.Location
		clone.Location = &loc
	}
	return clone
}

// Debuggee is a deployed application instance that breakpoints can be set against.
type Debuggee struct {
	ID          string            `json:"id"`
	Project     string            `json:"project"`
	Uniquifier  string            `json:"uniquifier,omitempty"`
	Description string            `json:"description,omitempty"`
	IsInactive  bool              `json:"isInactive,omitempty"`
	IsDisabled  bool              `json:"isDisabled,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Status      *StatusMessage    `json:"status,omitempty"`
}
