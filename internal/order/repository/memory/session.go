package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/order/repository"
)

const defaultMaxSessions = 10000

// SessionStore is the in-process session repository. Sessions expire after
// the configured TTL and the LRU bound caps memory growth on abandoned
// conversations.
type SessionStore struct {
	cache *expirable.LRU[string, *model.Session]
}

var _ repository.SessionRepository = (*SessionStore)(nil)

// New creates an in-memory session store with the given TTL.
func New(ttl time.Duration, maxSessions int) *SessionStore {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	return &SessionStore{
		cache: expirable.NewLRU[string, *model.Session](maxSessions, nil, ttl),
	}
}

func (s *SessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Put(_ context.Context, sess *model.Session) error {
	s.cache.Add(sess.ID, sess)
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.cache.Remove(id)
	return nil
}

// Len returns the number of live sessions, for diagnostics.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}
