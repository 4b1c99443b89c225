package repository

import (
	"context"
	"time"
)

// SessionRepository maps a session cookie value to the authenticated user ID.
type SessionRepository interface {
	// Get returns the user ID for sid, or domain.ErrSessionNotFound.
	Get(ctx context.Context, sid string) (string, error)
	Set(ctx context.Context, sid, userID string, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}
