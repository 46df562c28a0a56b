package token

import "sync"

// MemStore is an in-memory Store used by tests and ephemeral sessions.
type MemStore struct {
	mu  sync.Mutex
	tok string
	set bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
	s.set = true
	return nil
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set || s.tok == "" {
		return "", ErrNotFound
	}
	return s.tok, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	s.set = false
	return nil
}
