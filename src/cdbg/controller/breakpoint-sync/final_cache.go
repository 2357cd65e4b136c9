package breakpointsync

import (
	"sync"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
)

// finalCache holds fully hydrated final breakpoints by id. Entries are immutable once stored.
type finalCache struct {
	mu      sync.RWMutex
	entries map[string]*entity.Breakpoint
}

func (f *finalCache) get(id string) (*entity.Breakpoint, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	bp, ok := f.entries[id]
	return bp, ok
}

func (f *finalCache) put(bp *entity.Breakpoint) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.entries == nil {
		f.entries = make(map[string]*entity.Breakpoint)
	}
	f.entries[bp.ID] = bp
}

// retain drops every entry whose id is not in snapshot and returns the number removed.
func (f *finalCache) retain(snapshot []*entity.Breakpoint) int {
	keep := make(map[string]struct{}, len(snapshot))
	for _, bp := range snapshot {
		keep[bp.ID] = struct{}{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	removed := 0
	for id := range f.entries {
		if _, ok := keep[id]; !ok {
			delete(f.entries, id)
			removed++
		}
	}
	return removed
}

func (f *finalCache) len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
