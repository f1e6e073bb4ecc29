package session

import (
	"sync"
	"time"
)

// Session is the in-memory record for one signed-in username.
type Session struct {
	// Hash is the opaque bearer credential handed out at sign-in.
	Hash string
	// Expires is the absolute deadline after which the session is dead.
	Expires time.Time
}

// Store abstracts the session table. The Manager holds exclusive mutation
// rights; nothing else writes sessions.
type Store interface {
	Get(username string) (Session, bool)
	Put(username string, s Session)
	Delete(username string)
}

// MemoryStore is the process-wide session table, guarded by a mutex.
//
// Concurrent sign-ins for the same username race; last write wins. That is
// acceptable: a user signing in from two places concurrently is expected to
// keep only the most recent session.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemoryStore constructs an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

// Get returns the session for username, if present.
func (s *MemoryStore) Get(username string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[username]
	return sess, ok
}

// Put installs or overwrites the session for username.
func (s *MemoryStore) Put(username string, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[username] = sess
}

// Delete removes the session for username, if present.
func (s *MemoryStore) Delete(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, username)
}

// Len reports the number of stored entries, expired-but-unevicted included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
