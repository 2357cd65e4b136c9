// Package breakpointbridge maps local breakpoint handles to remote breakpoints and reacts to poll results.
package breakpointbridge

import (
	"slices"
	"sync"

	"github.com/uber-go/tally"
	breakpointsync "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-sync"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	localbreakpoint "github.com/uber/cdbg-sync/src/cdbg/repository/local-breakpoint"
	"go.uber.org/zap"
)

const _nameKey = "bridge"

// Bridge keeps local breakpoints and remote breakpoints of one SyncState in step.
type Bridge interface {
	breakpointsync.Listener

	// RegisterLocal creates the remote counterpart of handle unless one exists or the handle came from the server.
	RegisterLocal(handle entity.LocalBreakpoint)
	// UnregisterLocal deletes the remote counterpart unless the server disabled the handle.
	UnregisterLocal(handle entity.LocalBreakpoint, temporary bool)
	// Forget drops the record of a handle that no longer exists locally.
	Forget(handleID string)
	// ReconcileIncoming materializes local handles for active remote breakpoints. Returns whether any were added.
	ReconcileIncoming(snapshot []*entity.Breakpoint) bool
	// MarkDisabled disables the local handle of a remote breakpoint that captured a snapshot.
	MarkDisabled(remoteID string)
	// CloneFinalToEditable replaces the local breakpoints at each snapshot location with an editable copy.
	CloneFinalToEditable(snapshots []*entity.Breakpoint)
	// Record returns a copy of the record for a handle.
	Record(handleID string) (entity.LocalBreakpointRecord, bool)
}

// Options configure a Bridge.
type Options struct {
	Controller breakpointsync.Controller
	Store      localbreakpoint.Store
	Stats      tally.Scope
	Logger     *zap.SugaredLogger
}

type bridge struct {
	controller breakpointsync.Controller
	store      localbreakpoint.Store
	stats      tally.Scope
	logger     *zap.SugaredLogger

	mu         sync.Mutex
	records    map[string]*entity.LocalBreakpointRecord
	byRemoteID map[string]string
	// pending maps a handle id to the generation of its in-flight registration.
	pending    map[string]uint64
	generation uint64
}

// New creates a Bridge with no records.
func New(opts Options) Bridge {
	if opts.Stats == nil {
		opts.Stats = tally.NoopScope
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	return &bridge{
		controller: opts.Controller,
		store:      opts.Store,
		stats:      opts.Stats.SubScope(_nameKey),
		logger:     opts.Logger.With("plugin", _nameKey),
		records:    make(map[string]*entity.LocalBreakpointRecord),
		byRemoteID: make(map[string]string),
		pending:    make(map[string]uint64),
	}
}

func (b *bridge) RegisterLocal(handle entity.LocalBreakpoint) {
	if !handle.IsEnabled() || !handle.SourceLocation().Valid() {
		return
	}
	id := handle.ID()

	b.mu.Lock()
	rec := b.records[id]
	switch {
	case rec != nil && rec.CreatedByServer:
		// The IDE echoes breakpoints the bridge materialized. Later edits register normally.
		rec.CreatedByServer = false
		b.mu.Unlock()
		return
	case rec != nil && rec.AddedOnServer && !rec.DisabledByServer:
		b.mu.Unlock()
		return
	}
	if _, ok := b.pending[id]; ok {
		b.mu.Unlock()
		return
	}
	b.generation++
	gen := b.generation
	b.pending[id] = gen
	b.mu.Unlock()

	bp := &entity.Breakpoint{
		Location:    handle.SourceLocation(),
		Condition:   handle.Condition(),
		Expressions: handle.WatchExpressions(),
	}
	b.controller.SetBreakpointAsync(bp, breakpointsync.SetBreakpointFuncs{
		Success: func(remoteID string) {
			if b.registered(handle, gen, remoteID) {
				handle.SetVerified(true, "")
			}
		},
		Error: func(message string) {
			b.mu.Lock()
			if b.pending[id] == gen {
				delete(b.pending, id)
			}
			b.mu.Unlock()

			b.stats.Counter("register.error").Inc(1)
			b.logger.Infow("breakpoint rejected", "handle", id, "message", message)
			handle.SetVerified(false, message)
		},
	})
}

// registered records remoteID for handle. A registration cancelled while in flight is deleted remotely instead.
func (b *bridge) registered(handle entity.LocalBreakpoint, gen uint64, remoteID string) bool {
	id := handle.ID()

	b.mu.Lock()
	if current, ok := b.pending[id]; !ok || current != gen {
		b.mu.Unlock()
		b.logger.Debugw("deleting cancelled registration", "handle", id, "remoteId", remoteID)
		b.controller.DeleteBreakpointAsync(remoteID)
		b.stats.Counter("register.cancelled").Inc(1)
		return false
	}
	defer b.mu.Unlock()

	delete(b.pending, id)
	if prev, ok := b.records[id]; ok && prev.RemoteID != "" && prev.RemoteID != remoteID {
		delete(b.byRemoteID, prev.RemoteID)
	}
	b.records[id] = &entity.LocalBreakpointRecord{
		RemoteID:      remoteID,
		Handle:        handle,
		AddedOnServer: true,
	}
	b.byRemoteID[remoteID] = id
	b.stats.Counter("register.success").Inc(1)
	return true
}

func (b *bridge) UnregisterLocal(handle entity.LocalBreakpoint, temporary bool) {
	b.mu.Lock()
	delete(b.pending, handle.ID())
	rec, ok := b.records[handle.ID()]
	if !ok {
		b.mu.Unlock()
		return
	}
	remoteID, added, disabledByServer := rec.RemoteID, rec.AddedOnServer, rec.DisabledByServer
	rec.AddedOnServer = false
	rec.CreatedByServer = false
	b.mu.Unlock()

	// A breakpoint disabled in the IDE has already been deleted remotely.
	if !added || disabledByServer || remoteID == "" {
		return
	}
	b.logger.Debugw("deleting remote breakpoint", "handle", handle.ID(), "remoteId", remoteID, "temporary", temporary)
	b.controller.DeleteBreakpointAsync(remoteID)
	b.stats.Counter("unregister").Inc(1)
}

func (b *bridge) Forget(handleID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forgetLocked(handleID)
}

func (b *bridge) forgetLocked(handleID string) {
	delete(b.pending, handleID)
	rec, ok := b.records[handleID]
	if !ok {
		return
	}
	if b.byRemoteID[rec.RemoteID] == handleID {
		delete(b.byRemoteID, rec.RemoteID)
	}
	delete(b.records, handleID)
}

func (b *bridge) ReconcileIncoming(snapshot []*entity.Breakpoint) bool {
	added := false
	for _, bp := range snapshot {
		if bp.IsFinalState || bp.ID == "" || !bp.Location.Valid() {
			continue
		}

		b.mu.Lock()
		var handle entity.LocalBreakpoint
		if hid, ok := b.byRemoteID[bp.ID]; ok {
			handle = b.records[hid].Handle
		}
		b.mu.Unlock()
		if handle != nil {
			handle.SetVerified(true, "")
			continue
		}

		if b.materialize(bp) {
			added = true
		}
	}
	return added
}

// materialize creates a local handle for an active remote breakpoint, replacing disabled handles at its location.
func (b *bridge) materialize(bp *entity.Breakpoint) bool {
	for _, existing := range b.store.FindAt(bp.Location) {
		if existing.IsEnabled() {
			return false
		}
	}
	for _, existing := range b.store.FindAt(bp.Location) {
		b.store.Remove(existing.ID(), true)
		b.Forget(existing.ID())
	}

	handle := b.store.Create(entity.LocalBreakpointInfo{
		Location:         bp.Location,
		Enabled:          true,
		Condition:        bp.Condition,
		WatchExpressions: slices.Clone(bp.Expressions),
		Verified:         true,
	})

	b.mu.Lock()
	b.records[handle.ID()] = &entity.LocalBreakpointRecord{
		RemoteID:        bp.ID,
		Handle:          handle,
		AddedOnServer:   true,
		CreatedByServer: true,
	}
	b.byRemoteID[bp.ID] = handle.ID()
	b.mu.Unlock()

	b.stats.Counter("materialized").Inc(1)
	return true
}

func (b *bridge) MarkDisabled(remoteID string) {
	b.mu.Lock()
	hid, ok := b.byRemoteID[remoteID]
	if !ok {
		b.mu.Unlock()
		return
	}
	rec := b.records[hid]
	rec.DisabledByServer = true
	handle := rec.Handle
	b.mu.Unlock()

	handle.SetEnabled(false)
}

func (b *bridge) CloneFinalToEditable(snapshots []*entity.Breakpoint) {
	for _, bp := range snapshots {
		if !bp.IsFinalState || !bp.Location.Valid() {
			continue
		}

		for _, existing := range b.store.FindAt(bp.Location) {
			b.store.Remove(existing.ID(), true)
			b.Forget(existing.ID())
		}

		clone := bp.CloneDefinition()
		handle := b.store.Create(entity.LocalBreakpointInfo{
			Location:         clone.Location,
			Enabled:          true,
			Condition:        clone.Condition,
			WatchExpressions: clone.Expressions,
		})
		b.RegisterLocal(handle)
	}
}

func (b *bridge) Record(handleID string) (entity.LocalBreakpointRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.records[handleID]
	if !ok {
		return entity.LocalBreakpointRecord{}, false
	}
	return *rec, true
}

// OnBreakpointListChanged disables handles whose remote breakpoint was captured, then materializes new ones.
func (b *bridge) OnBreakpointListChanged(state *entity.SyncState) {
	snapshot := state.CurrentSnapshot()
	for _, bp := range snapshot {
		if !bp.IsFinalState {
			continue
		}
		b.mu.Lock()
		hid, ok := b.byRemoteID[bp.ID]
		disabled := ok && b.records[hid].DisabledByServer
		b.mu.Unlock()
		if ok && !disabled {
			b.MarkDisabled(bp.ID)
		}
	}

	if b.ReconcileIncoming(snapshot) {
		b.logger.Debugw("materialized remote breakpoints", "debuggee", state.DebuggeeID)
	}
}
