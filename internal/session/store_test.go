package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-arquivo/internal/shared/apperror"
)

func TestMemoryStore_CreateAndAuthorize(t *testing.T) {
	store := NewMemoryStore(0)

	sess := store.Create("user-1", "maria", "Maria Silva", "admin")

	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "maria", sess.Login)

	got, err := store.Authorize(sess.Token)
	assert.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Name, got.Name)
}

func TestMemoryStore_AuthorizeUnknownToken(t *testing.T) {
	store := NewMemoryStore(0)

	_, err := store.Authorize("not-a-token")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = store.Authorize("")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestMemoryStore_Revoke(t *testing.T) {
	store := NewMemoryStore(0)
	sess := store.Create("user-1", "maria", "Maria Silva", "admin")

	store.Revoke(sess.Token)

	_, err := store.Authorize(sess.Token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := &memoryStore{
		sessions: make(map[string]Session),
		ttl:      30 * time.Minute,
		now:      time.Now,
	}

	sess := s.Create("user-1", "maria", "Maria Silva", "admin")

	// Move the clock past the ttl
	s.now = func() time.Time { return time.Now().Add(31 * time.Minute) }

	_, err := s.Authorize(sess.Token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	// An expired token is evicted, not just rejected
	s.mu.RLock()
	_, still := s.sessions[sess.Token]
	s.mu.RUnlock()
	assert.False(t, still)
}
