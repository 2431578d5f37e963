// Package session keeps per-user preferences for the lifetime of the
// process. The store is deliberately tiny and hidden behind an interface
// so a persistent backend can replace it without touching the pipeline.
package session

import "sync"

// Store holds per-user engine preferences.
type Store interface {
	// Engine returns the engine chosen by the user, if any.
	Engine(userID int64) (string, bool)
	// SetEngine records the user's engine choice.
	SetEngine(userID int64, engine string)
}

type memoryStore struct {
	mu      sync.RWMutex
	engines map[int64]string
}

// NewMemoryStore creates an in-memory Store. Handlers run in concurrent
// goroutines, so access is mutex-guarded.
func NewMemoryStore() Store {
	return &memoryStore{engines: make(map[int64]string)}
}

func (s *memoryStore) Engine(userID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	engine, ok := s.engines[userID]
	return engine, ok
}

func (s *memoryStore) SetEngine(userID int64, engine string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engines[userID] = engine
}
