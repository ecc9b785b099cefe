// Package memory provides in-process stores for development and tests.
// Session records live until deleted; expiry is the verifier's concern.
package memory

import (
	"context"
	"sync"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
)

// SessionStore is a mutex-guarded map implementing ports.SessionStore.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session)}
}

// Save inserts the session if its ID is unused. Existing IDs are never
// overwritten.
func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return ports.ErrDuplicateSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[sess.ID]; exists {
		return ports.ErrDuplicateSessionID
	}
	s.sessions[sess.ID] = sess
	return nil
}

// Get returns the session with the given ID, expired or not.
func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes the session with the given ID. Unknown IDs are not an error.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
