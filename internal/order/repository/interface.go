package repository

import (
	"context"

	"restaurant-order-agent/internal/model"
)

// SessionRepository stores order-in-progress sessions keyed by conversation
// id. Implementations own expiry; callers treat a missing session as a new
// conversation.
type SessionRepository interface {
	// Get returns the session for id, or ErrSessionNotFound.
	Get(ctx context.Context, id string) (*model.Session, error)

	// Put stores the session under its id, refreshing any TTL.
	Put(ctx context.Context, s *model.Session) error

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
