package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session binds one Controller to an id handed out to the client. Sessions
// are not persisted; idle ones are evicted after the store TTL.
type Session struct {
	ID         string
	Controller *Controller

	lastSeen time.Time // guarded by the store mutex
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new session with default filter state. Expired sessions
// are swept here so the map does not grow unbounded without a reaper.
func (s *SessionStore) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}

	sess := &Session{
		ID:         uuid.NewString(),
		Controller: NewController(),
		lastSeen:   now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session and touches its idle timer. An expired session is
// dropped and reported as missing.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	now := s.now()
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}

	sess.lastSeen = now
	return sess, true
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
