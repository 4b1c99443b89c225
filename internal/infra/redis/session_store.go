package redis

import (
	"context"
	"fmt"
	"time"

	"membership-credits/internal/domain"
	"membership-credits/internal/domain/ports/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

// SessionStore maps session cookie values to user IDs in Redis.
type SessionStore struct {
	client RedisClient
	ttl    time.Duration
}

func NewSessionStore(client RedisClient, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) key(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

func (s *SessionStore) Get(ctx context.Context, sid string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(sid))
	if err != nil {
		if IsNil(err) {
			return "", domain.ErrSessionNotFound
		}
		return "", err
	}
	return userID, nil
}

func (s *SessionStore) Set(ctx context.Context, sid, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	return s.client.Set(ctx, s.key(sid), userID, ttl)
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid))
}
