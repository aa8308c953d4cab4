package runtime

import "sync"

// Store is a chained key/value map of provisions. Lookup walks the local
// map first and then the fallback chain, so a descendant's entry shadows an
// ancestor's without mutating it. Writes always land in the local map.
type Store struct {
	mu       sync.RWMutex
	values   map[any]any
	fallback *Store
}

// NewStore creates a store chained to fallback. A nil fallback creates a
// root store.
func NewStore(fallback *Store) *Store {
	return &Store{fallback: fallback}
}

// Fork creates an empty store whose lookups fall back to s.
func (s *Store) Fork() *Store {
	return NewStore(s)
}

// Fallback returns the store s was forked from, or nil for a root store.
func (s *Store) Fallback() *Store {
	return s.fallback
}

// Set writes value under key into the local map only. Ancestor stores are
// never mutated.
func (s *Store) Set(key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

// Get returns the nearest value for key, searching the local map and then
// the fallback chain. The second return distinguishes a provided nil from
// an absent key.
func (s *Store) Get(key any) (any, bool) {
	s.mu.RLock()
	if s.values != nil {
		if v, ok := s.values[key]; ok {
			s.mu.RUnlock()
			return v, true
		}
	}
	fallback := s.fallback
	s.mu.RUnlock()

	if fallback != nil {
		return fallback.Get(key)
	}
	return nil, false
}

// Has reports whether key is present anywhere in the chain. A provided nil
// or false value counts as present.
func (s *Store) Has(key any) bool {
	_, ok := s.Get(key)
	return ok
}

// HasLocal reports whether key is present in the local map, ignoring the
// fallback chain.
func (s *Store) HasLocal(key any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.values == nil {
		return false
	}
	_, ok := s.values[key]
	return ok
}

// Len returns the number of local entries, ignoring the fallback chain.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
