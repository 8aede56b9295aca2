package service

import (
	"context"
	"sync"
	"time"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
)

// MemorySessionStore is an in-process SessionStore.
//
// Session issuance lives outside this service; the store only holds sessions
// that were handed to it through Put. Expired sessions are dropped lazily on
// lookup, so the store needs no background sweeper.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*authDomain.Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*authDomain.Session),
	}
}

// Put stores a session under its token, replacing any previous session with
// the same token.
func (s *MemorySessionStore) Put(session *authDomain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
}

// Get returns the session for the given token.
// Returns ErrSessionNotFound for unknown tokens and ErrSessionExpired for
// sessions past their expiry; expired sessions are removed.
func (s *MemorySessionStore) Get(ctx context.Context, token string) (*authDomain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, authDomain.ErrSessionNotFound
	}

	if session.IsExpired(time.Now().UTC()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, authDomain.ErrSessionExpired
	}

	return session, nil
}

// Delete removes the session for the given token, if present.
func (s *MemorySessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
