package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore is the production session store. Records live under
// "session:<id>" with a TTL equal to the configured lifetime, refreshed on
// every write.
type RedisStore struct {
	client   *redis.Client
	lifetime time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, lifetime time.Duration) *RedisStore {
	return &RedisStore{
		client:   client,
		lifetime: lifetime,
	}
}

func (r *RedisStore) key(id string) string {
	return redisKeyPrefix + id
}

// Create persists a new session
func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	return r.write(ctx, s)
}

// Get returns the live session for id, or ErrNotFound
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: redis get: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}

	return &s, nil
}

// Save persists mutations to an existing session
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	return r.write(ctx, s)
}

// Delete removes a session. Redis DEL on a missing key is a no-op, which
// gives logout its idempotency.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

func (r *RedisStore) write(ctx context.Context, s *Session) error {
	if s.ID == "" {
		return fmt.Errorf("session: missing id")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.key(s.ID), data, r.lifetime).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}
