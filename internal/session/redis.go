package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis as JSON with a TTL, so sessions survive
// restarts and are shared between replicas.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Get(ctx context.Context, id string) (models.Identity, error) {
	data, err := r.client.Get(ctx, r.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Identity{}, ErrNotFound
		}
		return models.Identity{}, fmt.Errorf("session get: %w", err)
	}
	var identity models.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return models.Identity{}, fmt.Errorf("session unmarshal: %w", err)
	}
	return identity, nil
}

func (r *RedisStore) Set(ctx context.Context, id string, identity models.Identity, ttl time.Duration) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+id, data, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
