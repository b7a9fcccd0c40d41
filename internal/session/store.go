package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
)

// CookieName is the session cookie issued to browsers.
const CookieName = "sessionid"

// Store keeps authenticated sessions in Redis, one key per opaque token.
type Store struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewStore(client *redisv9.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 14 * 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

// Create opens a session for the user and returns its token.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	key := s.sessionKey(token)
	value := strconv.FormatUint(uint64(userID), 10)
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set session failed: %w", err)
	}
	return token, nil
}

// UserID resolves a token to the logged-in user. A miss is not an error:
// expired and unknown tokens both report ok=false. A hit slides the
// expiration window forward.
func (s *Store) UserID(ctx context.Context, token string) (uint, bool, error) {
	key := s.sessionKey(token)
	raw, err := s.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get session failed: %w", err)
	}

	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse session payload failed: %w", err)
	}
	_ = s.client.Expire(ctx, key, s.ttl).Err()
	return uint(userID), true, nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	return nil
}

// TTL reports the configured session lifetime, used for cookie max-age.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) sessionKey(token string) string {
	return fmt.Sprintf("auth:session:%s", token)
}
