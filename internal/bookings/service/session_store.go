package service

import (
	"sync"
	"time"

	"smarttour/internal/bookings/workflow"
)

// session is one booking wizard. mu serializes every operation on workflow.
type session struct {
	mu       sync.Mutex
	id       string
	userID   string
	token    string
	workflow *workflow.Workflow

	expiresAt time.Time
}

// SessionStore keeps booking sessions in memory with a sliding TTL.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	once     sync.Once
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	store := &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	go store.cleanup(min(ttl, time.Minute))

	return store
}

func (s *SessionStore) put(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.expiresAt = s.now().Add(s.ttl)
	s.sessions[sess.id] = sess
}

// acquire returns the live session with its mutex held and extends its TTL.
// The caller must unlock sess.mu.
func (s *SessionStore) acquire(id string) (*session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok && !s.now().Before(sess.expiresAt) {
		delete(s.sessions, id)
		ok = false
	}
	if ok {
		sess.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Unlock()

	if !ok {
		return nil, false
	}
	sess.mu.Lock()
	return sess, true
}

func (s *SessionStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *SessionStore) expiry(sess *session) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sess.expiresAt
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *SessionStore) evictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for id, sess := range s.sessions {
		if !now.Before(sess.expiresAt) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *SessionStore) Stop() {
	s.once.Do(func() {
		close(s.stopCh)
	})
}
