// Package session holds the single most recently collected record. It is
// the only state shared between the control surface and the benchmark
// worker, so access is mutex guarded.
package session

import (
	"sync"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// Store is a single-slot, last-write-wins holder of the current record.
type Store struct {
	mu      sync.RWMutex
	current report.Value
	set     bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set overwrites the current record unconditionally.
func (s *Store) Set(v report.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = v
	s.set = true
}

// Get returns the current record, or false if nothing has been collected
// yet. Callers treat the empty case as "nothing to export", not an error.
func (s *Store) Get() (report.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.set
}
