package mapper

import (
	"slices"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/model"
)

// _actionCapture is the only breakpoint action the daemon creates.
const _actionCapture = "CAPTURE"

// BreakpointToModel maps a Breakpoint entity to its wire equivalent.
func BreakpointToModel(b *entity.Breakpoint) *model.Breakpoint {
	if b == nil {
		return nil
	}
	return &model.Breakpoint{
		ID:                   b.ID,
		Action:               _actionCapture,
		Location:             locationToModel(b.Location),
		Condition:            b.Condition,
		Expressions:          slices.Clone(b.Expressions),
		IsFinalState:         b.IsFinalState,
		CreateTime:           b.CreateTime,
		FinalTime:            b.FinalTime,
		UserEmail:            b.UserEmail,
		Status:               statusToModel(b.Status),
		StackFrames:          framesToModel(b.StackFrames),
		EvaluatedExpressions: variablesToModel(b.EvaluatedExpressions),
		VariableTable:        variablesToModel(b.VariableTable),
	}
}

// ModelToBreakpoint maps a wire Breakpoint to its entity equivalent.
func ModelToBreakpoint(b *model.Breakpoint) *entity.Breakpoint {
	if b == nil {
		return nil
	}
	return &entity.Breakpoint{
		ID:                   b.ID,
		Location:             modelToLocation(b.Location),
		Condition:            b.Condition,
		Expressions:          slices.Clone(b.Expressions),
		IsFinalState:         b.IsFinalState,
		CreateTime:           b.CreateTime,
		FinalTime:            b.FinalTime,
		UserEmail:            b.UserEmail,
		Status:               modelToStatus(b.Status),
		StackFrames:          modelToFrames(b.StackFrames),
		EvaluatedExpressions: modelToVariables(b.EvaluatedExpressions),
		VariableTable:        modelToVariables(b.VariableTable),
	}
}

// ModelsToBreakpoints maps a list of wire breakpoints, skipping nil entries.
func ModelsToBreakpoints(bps []*model.Breakpoint) []*entity.Breakpoint {
	result := make([]*entity.Breakpoint, 0, len(bps))
	for _, bp := range bps {
		if bp == nil {
			continue
		}
		result = append(result, ModelToBreakpoint(bp))
	}
	return result
}

// BreakpointsToModels maps a list of breakpoint entities to wire breakpoints.
func BreakpointsToModels(bps []*entity.Breakpoint) []*model.Breakpoint {
	result := make([]*model.Breakpoint, 0, len(bps))
	for _, bp := range bps {
		if bp == nil {
			continue
		}
		result = append(result, BreakpointToModel(bp))
	}
	return result
}

// ModelToDebuggee maps a wire Debuggee to its entity equivalent.
func ModelToDebuggee(d *model.Debuggee) entity.Debuggee {
	return entity.Debuggee{
		ID:          d.ID,
		Project:     d.Project,
		Uniquifier:  d.Uniquifier,
		Description: d.Description,
		IsInactive:  d.IsInactive,
		IsDisabled:  d.IsDisabled,
		Labels:      d.Labels,
		Status:      modelToStatus(d.Status),
	}
}

func locationToModel(l *entity.SourceLocation) *model.SourceLocation {
	if l == nil {
		return nil
	}
	return &model.SourceLocation{Path: l.Path, Line: l.Line}
}

func modelToLocation(l *model.SourceLocation) *entity.SourceLocation {
	if l == nil {
		return nil
	}
	return &entity.SourceLocation{Path: l.Path, Line: l.Line}
}

func statusToModel(s *entity.StatusMessage) *model.StatusMessage {
	if s == nil {
		return nil
	}
	return &model.StatusMessage{
		IsError:  s.IsError,
		RefersTo: s.RefersTo,
		Description: &model.FormatMessage{
			Format:     s.Description.Format,
			Parameters: slices.Clone(s.Description.Parameters),
		},
	}
}

func modelToStatus(s *model.StatusMessage) *entity.StatusMessage {
	if s == nil {
		return nil
	}
	status := &entity.StatusMessage{
		IsError:  s.IsError,
		RefersTo: s.RefersTo,
	}
	if s.Description != nil {
		status.Description = entity.FormatMessage{
			Format:     s.Description.Format,
			Parameters: slices.Clone(s.Description.Parameters),
		}
	}
	return status
}

func variablesToModel(vars []entity.Variable) []*model.Variable {
	if len(vars) == 0 {
		return nil
	}
	result := make([]*model.Variable, len(vars))
	for i, v := range vars {
		result[i] = &model.Variable{
			Name:          v.Name,
			Value:         v.Value,
			Type:          v.Type,
			Members:       variablesToModel(v.Members),
			VarTableIndex: v.VarTableIndex,
			Status:        statusToModel(v.Status),
		}
	}
	return result
}

func modelToVariables(vars []*model.Variable) []entity.Variable {
	if len(vars) == 0 {
		return nil
	}
	result := make([]entity.Variable, 0, len(vars))
	for _, v := range vars {
		if v == nil {
			continue
		}
		result = append(result, entity.Variable{
			Name:          v.Name,
			Value:         v.Value,
			Type:          v.Type,
			Members:       modelToVariables(v.Members),
			VarTableIndex: v.VarTableIndex,
			Status:        modelToStatus(v.Status),
		})
	}
	return result
}

func framesToModel(frames []entity.StackFrame) []*model.StackFrame {
	if len(frames) == 0 {
		return nil
	}
	result := make([]*model.StackFrame, len(frames))
	for i, f := range frames {
		result[i] = &model.StackFrame{
			Function:  f.Function,
			Location:  locationToModel(f.Location),
			Arguments: variablesToModel(f.Arguments),
			Locals:    variablesToModel(f.Locals),
		}
	}
	return result
}

func modelToFrames(frames []*model.StackFrame) []entity.StackFrame {
	if len(frames) == 0 {
		return nil
	}
	result := make([]entity.StackFrame, 0, len(frames))
	for _, f := range frames {
		if f == nil {
			continue
		}
		result = append(result, entity.StackFrame{
			Function:  f.Function,
			Location:  modelToLocation(f.Location),
			Arguments: modelToVariables(f.Arguments),
			Locals:    modelToVariables(f.Locals),
		})
	}
	return result
}
