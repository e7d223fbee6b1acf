package session

import (
	"context"
	"sync"

	"github.com/ottoman-ai/chef-chat/internal/model/chat"
)

// MemoryStore keeps sessions in a process-local map.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]chat.Session)}
}

// Get retrieves a session by identifier.
func (s *MemoryStore) Get(_ context.Context, id string) (chat.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return chat.Session{}, false, nil
	}
	sess.Transcript = append([]chat.Turn(nil), sess.Transcript...)
	return sess, true, nil
}

// Put stores a session under the given identifier.
func (s *MemoryStore) Put(_ context.Context, id string, sess chat.Session) error {
	sess.Transcript = append([]chat.Turn(nil), sess.Transcript...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
	return nil
}

// Delete removes all state for the given identifier.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
