// Package localbreakpoint holds the daemon side mirrors of IDE breakpoints for one run configuration.
package localbreakpoint

import (
	"slices"
	"sync"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/factory"
)

// EventKind is the kind of change pushed back to the IDE.
type EventKind int

// Change kinds reported to a ChangeFunc.
const (
	Created EventKind = iota
	Updated
	Removed
)

func (k EventKind) String() string {
	switch k {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// ChangeFunc is called for every change the daemon makes to a local breakpoint.
// Changes reported by the IDE itself are not echoed back. It must not call back into the Store.
type ChangeFunc func(kind EventKind, info entity.LocalBreakpointInfo)

// Store is a concurrent map of local breakpoint handles keyed by handle id.
type Store interface {
	// Put records a breakpoint reported by the IDE, updating the existing handle if the id is known.
	Put(info entity.LocalBreakpointInfo) entity.LocalBreakpoint
	// Create adds a breakpoint on behalf of the daemon. An empty id is replaced by a new one.
	Create(info entity.LocalBreakpointInfo) entity.LocalBreakpoint
	Get(id string) (entity.LocalBreakpoint, bool)
	// Remove drops the handle. If notify is set the IDE is told to delete its breakpoint.
	Remove(id string, notify bool) (entity.LocalBreakpoint, bool)
	// FindAt returns the handles at loc in insertion order.
	FindAt(loc *entity.SourceLocation) []entity.LocalBreakpoint
	List() []entity.LocalBreakpoint
}

type store struct {
	mu       sync.RWMutex
	handles  map[string]*handle
	order    []string
	onChange ChangeFunc
}

// New creates an empty Store. onChange may be nil.
func New(onChange ChangeFunc) Store {
	if onChange == nil {
		onChange = func(EventKind, entity.LocalBreakpointInfo) {}
	}
	return &store{
		handles:  make(map[string]*handle),
		onChange: onChange,
	}
}

func (s *store) Put(info entity.LocalBreakpointInfo) entity.LocalBreakpoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.handles[info.ID]; ok {
		h.replace(info)
		return h
	}
	return s.add(info)
}

func (s *store) Create(info entity.LocalBreakpointInfo) entity.LocalBreakpoint {
	if info.ID == "" {
		info.ID = factory.UUID().String()
	}

	s.mu.Lock()
	h, ok := s.handles[info.ID]
	if ok {
		h.replace(info)
	} else {
		h = s.add(info)
	}
	s.mu.Unlock()

	s.onChange(Created, h.Info())
	return h
}

func (s *store) Get(id string) (entity.LocalBreakpoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.handles[id]
	if !ok {
		return nil, false
	}
	return h, true
}

func (s *store) Remove(id string, notify bool) (entity.LocalBreakpoint, bool) {
	s.mu.Lock()
	h, ok := s.handles[id]
	if ok {
		delete(s.handles, id)
		s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	}
	s.mu.Unlock()

	if !ok {
		return nil, false
	}
	h.detach()
	if notify {
		s.onChange(Removed, h.Info())
	}
	return h, true
}

func (s *store) FindAt(loc *entity.SourceLocation) []entity.LocalBreakpoint {
	if !loc.Valid() {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []entity.LocalBreakpoint
	for _, id := range s.order {
		h := s.handles[id]
		if h.SourceLocation().Equal(loc) {
			result = append(result, h)
		}
	}
	return result
}

func (s *store) List() []entity.LocalBreakpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.LocalBreakpoint, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.handles[id])
	}
	return result
}

// add must be called with s.mu held.
func (s *store) add(info entity.LocalBreakpointInfo) *handle {
	h := &handle{info: cloneInfo(info), notify: s.onChange}
	s.handles[info.ID] = h
	s.order = append(s.order, info.ID)
	return h
}

// handle implements entity.LocalBreakpoint. Setters report an Updated change when the value differs.
type handle struct {
	mu       sync.Mutex
	info     entity.LocalBreakpointInfo
	notify   ChangeFunc
	detached bool
}

func (h *handle) ID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.info.ID
}

func (h *handle) SourceLocation() *entity.SourceLocation {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.info.Location == nil {
		return nil
	}
	loc := *h.info.Location
	return &loc
}

func (h *handle) IsEnabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.info.Enabled
}

func (h *handle) Condition() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.info.Condition
}

func (h *handle) WatchExpressions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.info.WatchExpressions)
}

func (h *handle) SetEnabled(enabled bool) {
	h.update(func(info *entity.LocalBreakpointInfo) bool {
		if info.Enabled == enabled {
			return false
		}
		info.Enabled = enabled
		return true
	})
}

func (h *handle) SetCondition(condition string) {
	h.update(func(info *entity.LocalBreakpointInfo) bool {
		if info.Condition == condition {
			return false
		}
		info.Condition = condition
		return true
	})
}

func (h *handle) SetVerified(verified bool, message string) {
	h.update(func(info *entity.LocalBreakpointInfo) bool {
		if info.Verified == verified && info.Message == message {
			return false
		}
		info.Verified = verified
		info.Message = message
		return true
	})
}

// Info returns a copy of the current handle state.
func (h *handle) Info() entity.LocalBreakpointInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloneInfo(h.info)
}

func (h *handle) update(apply func(info *entity.LocalBreakpointInfo) bool) {
	h.mu.Lock()
	changed := apply(&h.info)
	info := cloneInfo(h.info)
	detached := h.detached
	h.mu.Unlock()

	if changed && !detached {
		h.notify(Updated, info)
	}
}

func (h *handle) replace(info entity.LocalBreakpointInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.info = cloneInfo(info)
}

func (h *handle) detach() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detached = true
}

func cloneInfo(info entity.LocalBreakpointInfo) entity.LocalBreakpointInfo {
	if info.Location != nil {
		loc := *info.Location
		info.Location = &loc
	}
	info.WatchExpressions = slices.Clone(info.WatchExpressions)
	return info
}

// Info returns a point in time copy of bp.
func Info(bp entity.LocalBreakpoint) entity.LocalBreakpointInfo {
	if h, ok := bp.(*handle); ok {
		return h.Info()
	}
	return entity.LocalBreakpointInfo{
		ID:               bp.ID(),
		Location:         bp.SourceLocation(),
		Enabled:          bp.IsEnabled(),
		Condition:        bp.Condition(),
		WatchExpressions: bp.WatchExpressions(),
	}
}
