// internal/auth/sessions.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-api/internal/models"
)

const sessionKeyPrefix = "session:"
const userSessionsPrefix = "user-sessions:"

// RedisSessionStore keeps sessions in redis with a TTL matching the
// session's expiry. A secondary set per user supports sign-out-everywhere.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+session.ID, data, ttl)
	pipe.SAdd(ctx, userSessionsPrefix+session.UserID, session.ID)
	pipe.Expire(ctx, userSessionsPrefix+session.UserID, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// FindByID returns the session, or (nil, nil) when missing or lapsed.
func (s *RedisSessionStore) FindByID(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	session, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+id)
	if session != nil {
		pipe.SRem(ctx, userSessionsPrefix+session.UserID, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByUserID drops every session the user holds.
func (s *RedisSessionStore) DeleteByUserID(ctx context.Context, userID string) error {
	ids, err := s.client.SMembers(ctx, userSessionsPrefix+userID).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("list user sessions: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, sessionKeyPrefix+id)
	}
	pipe.Del(ctx, userSessionsPrefix+userID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}
