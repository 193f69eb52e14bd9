package store

import (
	"strings"
	"sync"
)

// RecentSearches is the contract for the recent-searches list the search UI
// reads and writes. It is injected into the presentation layer; the weather
// core itself never touches it.
type RecentSearches interface {
	Get() []string
	Put(cities []string)
	Record(city string)
}

// MemoryRecents is a concurrency-safe in-memory implementation of
// RecentSearches with a bounded, most-recent-first list.
type MemoryRecents struct {
	mu sync.RWMutex

	cities []string
	max    int
}

// NewMemoryRecents creates a MemoryRecents keeping at most max entries.
// If max is <= 0, it is treated as unlimited.
func NewMemoryRecents(max int) *MemoryRecents {
	return &MemoryRecents{max: max}
}

// Get returns a copy of the list, most recent first. Callers never share the
// underlying slice.
func (s *MemoryRecents) Get() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.cities))
	copy(out, s.cities)
	return out
}

// Put replaces the whole list, enforcing the size bound.
func (s *MemoryRecents) Put(cities []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cities = append(s.cities[:0:0], cities...)
	s.trim()
}

// Record pushes a city to the front of the list, removing any existing entry
// for the same city (case-insensitive) and enforcing the size bound.
func (s *MemoryRecents) Record(city string) {
	city = strings.TrimSpace(city)
	if city == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]string, 0, len(s.cities)+1)
	kept = append(kept, city)
	for _, c := range s.cities {
		if !strings.EqualFold(c, city) {
			kept = append(kept, c)
		}
	}
	s.cities = kept
	s.trim()
}

func (s *MemoryRecents) trim() {
	if s.max > 0 && len(s.cities) > s.max {
		s.cities = s.cities[:s.max]
	}
}
