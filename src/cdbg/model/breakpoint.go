// Package model contains the wire and storage representations used by gateways and repositories.
package model

// SourceLocation is the wire form of a source location.
type SourceLocation struct {
	Path string `json:"path,omitempty" yaml:"path"`
	Line int    `json:"line,omitempty" yaml:"line"`
}

// FormatMessage is the wire form of a templated message.
type FormatMessage struct {
	Format     string   `json:"format,omitempty" yaml:"format"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// StatusMessage is the wire form of a status.
type StatusMessage struct {
	IsError     bool           `json:"isError,omitempty" yaml:"isError,omitempty"`
	RefersTo    string         `json:"refersTo,omitempty" yaml:"refersTo,omitempty"`
	Description *FormatMessage `json:"description,omitempty" yaml:"description,omitempty"`
}

// Variable is the wire form of a captured variable.
type Variable struct {
	Name          string         `json:"name,omitempty" yaml:"name,omitempty"`
	Value         string         `json:"value,omitempty" yaml:"value,omitempty"`
	Type          string         `json:"type,omitempty" yaml:"type,omitempty"`
	Members       []*Variable    `json:"members,omitempty" yaml:"members,omitempty"`
	VarTableIndex *int           `json:"varTableIndex,omitempty" yaml:"varTableIndex,omitempty"`
	Status        *StatusMessage `json:"status,omitempty" yaml:"status,omitempty"`
}

// StackFrame is the wire form of a captured call frame.
type StackFrame struct {
	Function  string          `json:"function,omitempty" yaml:"function,omitempty"`
	Location  *SourceLocation `json:"location,omitempty" yaml:"location,omitempty"`
	Arguments []*Variable     `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Locals    []*Variable     `json:"locals,omitempty" yaml:"locals,omitempty"`
}

// Breakpoint is the Cloud Debugger v2 wire form of a breakpoint.
type Breakpoint struct {
	ID                   string            `json:"id,omitempty" yaml:"id"`
	Action               string            `json:"action,omitempty" yaml:"action,omitempty"`
	Location             *SourceLocation   `json:"location,omitempty" yaml:"location,omitempty"`
	Condition            string            `json:"condition,omitempty" yaml:"condition,omitempty"`
	Expressions          []string          `json:"expressions,omitempty" yaml:"expressions,omitempty"`
	IsFinalState         bool              `json:"isFinalState,omitempty" yaml:"isFinalState,omitempty"`
	CreateTime           string            `json:"createTime,omitempty" yaml:"createTime,omitempty"`
	FinalTime            string            `json:"finalTime,omitempty" yaml:"finalTime,omitempty"`
	UserEmail            string            `json:"userEmail,omitempty" yaml:"userEmail,omitempty"`
	Labels               map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Status               *StatusMessage    `json:"status,omitempty" yaml:"status,omitempty"`
	StackFrames          []*StackFrame     `json:"stackFrames,omitempty" yaml:"-"`
	EvaluatedExpressions []*Variable       `json:"evaluatedExpressions,omitempty" yaml:"-"`
	VariableTable        []*Variable       `json:"variableTable,omitempty" yaml:"-"`
}

// ListBreakpointsResponse is returned by debuggees.breakpoints.list.
type ListBreakpointsResponse struct {
	Breakpoints   []*Breakpoint `json:"breakpoints,omitempty"`
	NextWaitToken string        `json:"nextWaitToken,omitempty"`
	WaitExpired   bool          `json:"waitExpired,omitempty"`
}

// GetBreakpointResponse is returned by debuggees.breakpoints.get.
type GetBreakpointResponse struct {
	Breakpoint *Breakpoint `json:"breakpoint,omitempty"`
}

// SetBreakpointResponse is returned by debuggees.breakpoints.set.
type SetBreakpointResponse struct {
	Breakpoint *Breakpoint `json:"breakpoint,omitempty"`
}

// Debuggee is the wire form of a debuggee.
type Debuggee struct {
	ID          string            `json:"id,omitempty"`
	Project     string            `json:"project,omitempty"`
	Uniquifier  string            `json:"uniquifier,omitempty"`
	Description string            `json:"description,omitempty"`
	IsInactive  bool              `json:"isInactive,omitempty"`
	IsDisabled  bool              `json:"isDisabled,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Status      *StatusMessage    `json:"status,omitempty"`
}

// ListDebuggeesResponse is returned by debuggees.list.
type ListDebuggeesResponse struct {
	Debuggees []*Debuggee `json:"debuggees,omitempty"`
}
