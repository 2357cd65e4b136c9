package clouddebugger

import (
	"context"
	"fmt"
	"slices"

	breakpointsync "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-sync"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/factory"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	localbreakpoint "github.com/uber/cdbg-sync/src/cdbg/repository/local-breakpoint"
)

const _kindSnapshot = "snapshot"

// BreakpointAdded mirrors a new IDE breakpoint and registers it with the backend.
// Registration completes asynchronously and is reported with a localBreakpointUpdated notification.
func (c *controller) BreakpointAdded(ctx context.Context, params *entity.LocalBreakpointParams) (*entity.LocalBreakpointInfo, error) {
	ds, workspaceRoot, err := c.lookup(ctx, params.RunConfiguration)
	if err != nil {
		return nil, err
	}
	info, err := localInfo(workspaceRoot, params)
	if err != nil {
		return nil, err
	}

	handle := ds.store.Put(info)
	ds.bridge.RegisterLocal(handle)
	result := localbreakpoint.Info(handle)
	return &result, nil
}

// BreakpointChanged applies an IDE edit. A changed definition replaces the remote breakpoint and a disabled
// breakpoint is removed remotely.
func (c *controller) BreakpointChanged(ctx context.Context, params *entity.LocalBreakpointParams) (*entity.LocalBreakpointInfo, error) {
	ds, workspaceRoot, err := c.lookup(ctx, params.RunConfiguration)
	if err != nil {
		return nil, err
	}
	info, err := localInfo(workspaceRoot, params)
	if err != nil {
		return nil, err
	}

	existing, ok := ds.store.Get(info.ID)
	if !ok {
		return c.BreakpointAdded(ctx, params)
	}
	previous := localbreakpoint.Info(existing)
	handle := ds.store.Put(info)

	switch {
	case !info.Enabled:
		if previous.Enabled {
			ds.bridge.UnregisterLocal(handle, params.Temporary)
		}
	case !previous.Enabled:
		ds.bridge.RegisterLocal(handle)
	case definitionChanged(previous, info):
		ds.bridge.UnregisterLocal(handle, true)
		ds.bridge.RegisterLocal(handle)
	}

	result := localbreakpoint.Info(handle)
	return &result, nil
}

// BreakpointRemoved drops an IDE breakpoint. A temporary removal keeps the record for the following add.
func (c *controller) BreakpointRemoved(ctx context.Context, params *entity.LocalBreakpointParams) error {
	ds, _, err := c.lookup(ctx, params.RunConfiguration)
	if err != nil {
		return err
	}
	id := params.Breakpoint.ID
	if id == "" {
		return errors.New("breakpoint id is required")
	}

	handle, ok := ds.store.Remove(id, false)
	if !ok {
		return nil
	}
	ds.bridge.UnregisterLocal(handle, params.Temporary)
	if !params.Temporary {
		ds.bridge.Forget(id)
	}
	return nil
}

// ListSnapshots returns the ordered breakpoints of the last poll, captured snapshots included.
// When ids are given only those breakpoints are returned.
func (c *controller) ListSnapshots(ctx context.Context, params *entity.SnapshotParams) ([]*entity.Breakpoint, error) {
	ds, _, err := c.lookup(ctx, params.RunConfiguration)
	if err != nil {
		return nil, err
	}

	snapshot := ds.state.CurrentSnapshot()
	if len(params.IDs) == 0 {
		return snapshot, nil
	}
	result := make([]*entity.Breakpoint, 0, len(params.IDs))
	for _, bp := range snapshot {
		if slices.Contains(params.IDs, bp.ID) {
			result = append(result, bp)
		}
	}
	return result, nil
}

type resolved struct {
	bp      *entity.Breakpoint
	message string
}

// ResolveSnapshot returns the fully hydrated breakpoint for the first id in params.
func (c *controller) ResolveSnapshot(ctx context.Context, params *entity.SnapshotParams) (*entity.Breakpoint, error) {
	ds, _, err := c.lookup(ctx, params.RunConfiguration)
	if err != nil {
		return nil, err
	}
	if len(params.IDs) == 0 {
		return nil, errors.New("snapshot id is required")
	}
	id := params.IDs[0]

	done := make(chan resolved, 1)
	ds.sync.ResolveBreakpointAsync(id, breakpointsync.ResolveBreakpointFuncs{
		Success: func(bp *entity.Breakpoint) { done <- resolved{bp: bp} },
		Error:   func(message string) { done <- resolved{message: message} },
	})

	select {
	case r := <-done:
		if r.bp == nil {
			return nil, fmt.Errorf("resolving %s %q: %w", _kindSnapshot, id, errors.New(r.message))
		}
		return r.bp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CloneSnapshots turns captured snapshots back into editable local breakpoints at the same locations.
func (c *controller) CloneSnapshots(ctx context.Context, params *entity.SnapshotParams) error {
	ds, _, err := c.lookup(ctx, params.RunConfiguration)
	if err != nil {
		return err
	}

	var snapshots []*entity.Breakpoint
	for _, id := range params.IDs {
		bp, ok := ds.state.FindInSnapshot(id)
		if !ok {
			return &errors.NotFoundError{Kind: _kindSnapshot, ID: id}
		}
		snapshots = append(snapshots, bp)
	}
	ds.bridge.CloneFinalToEditable(snapshots)
	return nil
}

// localInfo resolves the IDE breakpoint in params, assigning an id and a location from the file URI if missing.
func localInfo(workspaceRoot string, params *entity.LocalBreakpointParams) (entity.LocalBreakpointInfo, error) {
	info := params.Breakpoint
	if info.ID == "" {
		info.ID = factory.UUID().String()
	}
	if info.Location == nil && params.URI != "" {
		loc, err := mapper.URIToSourceLocation(workspaceRoot, params.URI, params.Line)
		if err != nil {
			return entity.LocalBreakpointInfo{}, err
		}
		info.Location = loc
	}
	return info, nil
}

func definitionChanged(a, b entity.LocalBreakpointInfo) bool {
	return !a.Location.Equal(b.Location) ||
		a.Condition != b.Condition ||
		!slices.Equal(a.WatchExpressions, b.WatchExpressions)
}
