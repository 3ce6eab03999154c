package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"go-arquivo/internal/shared/apperror"
)

// Session maps an opaque bearer token to the acting identity. Sessions
// are process-local and ephemeral: a restart logs everyone out.
type Session struct {
	Token    string
	UserID   string
	Login    string
	Name     string
	Role     string
	IssuedAt time.Time
}

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	Create(userID, login, name, role string) Session
	Authorize(token string) (Session, error)
	Revoke(token string)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore builds the in-process store. ttl <= 0 means sessions
// never expire (the desktop deployment keeps one session per launch).
func NewMemoryStore(ttl time.Duration) Store {
	s := &memoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

func (s *memoryStore) Create(userID, login, name, role string) Session {
	sess := Session{
		Token:    uuid.NewString(),
		UserID:   userID,
		Login:    login,
		Name:     name,
		Role:     role,
		IssuedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

func (s *memoryStore) Authorize(token string) (Session, error) {
	if token == "" {
		return Session{}, apperror.ErrUnauthorized
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Session{}, apperror.ErrUnauthorized
	}

	if s.expired(sess) {
		s.Revoke(token)
		return Session{}, apperror.ErrUnauthorized
	}

	return sess, nil
}

func (s *memoryStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *memoryStore) expired(sess Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.IssuedAt) > s.ttl
}

func (s *memoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for token, sess := range s.sessions {
			if s.expired(sess) {
				delete(s.sessions, token)
			}
		}
		s.mu.Unlock()
	}
}
