package session

import (
	"context"
	"sync"
	"time"

	"github.com/auranode/auranode/internal/model"
)

// MemoryStore is an in-memory session store. Sessions do not survive a
// process restart; use the Redis store in deployments where that matters.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session

	now func() time.Time // overridable for tests
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*model.Session),
		now:      time.Now,
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrSessionNotFound
	}

	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, model.ErrSessionNotFound
	}

	return sess, nil
}

func (s *MemoryStore) Put(_ context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// CleanExpired removes expired sessions (call periodically).
func (s *MemoryStore) CleanExpired() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
		}
	}
}
