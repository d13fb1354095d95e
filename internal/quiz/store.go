package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultSessionLimit = 5000

var ErrSessionNotFound = errors.New("quiz session not found")

// SessionStore holds live sessions in memory and serializes every mutation.
// Sessions idle for longer than ttl are pruned; at limit the least recently
// used session is evicted to make room.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	limit    int
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration, limit int) *SessionStore {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	return &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		limit:    limit,
		now:      time.Now,
	}
}

func (s *SessionStore) Create() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	s.evictLocked()
	id := uuid.New()
	s.sessions[id] = NewSession(id, s.now())
	return id
}

// Update runs fn on the session while holding the store lock.
func (s *SessionStore) Update(id uuid.UUID, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return err
	}
	sess.UpdatedAt = s.now()
	return nil
}

func (s *SessionStore) View(id uuid.UUID, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	fn(sess)
	return nil
}

func (s *SessionStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) pruneLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func (s *SessionStore) evictLocked() {
	for len(s.sessions) >= s.limit {
		var oldestID uuid.UUID
		var oldest time.Time
		first := true
		for id, sess := range s.sessions {
			if first || sess.UpdatedAt.Before(oldest) {
				oldestID, oldest, first = id, sess.UpdatedAt, false
			}
		}
		delete(s.sessions, oldestID)
	}
}
