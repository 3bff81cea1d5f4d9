package x11clipboard

import (
	"sync"

	"github.com/jezek/xgb/xproto"
)

// entry is what this process currently offers as owner of a selection: the
// target atom it was stored under (always UTF8_STRING via the façade) and
// the raw bytes.
type entry struct {
	target xproto.Atom
	value  []byte
}

// Store is the process-wide, concurrently-readable map from selection atom
// to what this process currently claims to own. Write inserts an entry just
// before it requests ownership and leaves it in place even if that request
// fails or another client wins the race; a later Insert replaces it, and it
// is removed on SelectionClear.
//
// Many goroutines read concurrently (the worker serving requests while a
// write prepares the next payload); writes are rare and exclusive, so a
// plain sync.RWMutex is sufficient — Go mutexes have no poisoned state, so
// there is no lock-poisoning case for the worker to tolerate.
type Store struct {
	mu      sync.RWMutex
	entries map[xproto.Atom]entry
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[xproto.Atom]entry)}
}

// Insert overwrites any prior entry for selection.
func (s *Store) Insert(selection, target xproto.Atom, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[selection] = entry{target: target, value: value}
}

// Get returns the stored target and value for selection, if any.
func (s *Store) Get(selection xproto.Atom) (target xproto.Atom, value []byte, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[selection]
	if !ok {
		return 0, nil, false
	}
	return e.target, e.value, true
}

// Remove deletes the entry for selection, called on SelectionClear.
func (s *Store) Remove(selection xproto.Atom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, selection)
}
