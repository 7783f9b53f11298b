package session

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("session not found")

// Store keeps active sessions in memory. No session survives a
// process restart.
type Store struct {
	mu sync.RWMutex

	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: map[string]*Session{},
	}
}

func (s *Store) Create() *Session {
	run := New()

	s.mu.Lock()
	s.sessions[run.ID()] = run
	s.mu.Unlock()

	return run
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.sessions[id]

	if !ok {
		return nil, ErrNotFound
	}

	return run, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
