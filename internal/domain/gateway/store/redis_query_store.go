package store

import (
	"context"
	"time"

	"classy-weather/internal/domain/model"
	"classy-weather/pkg/redis"
)

// RedisQueryStore keeps the query in a Redis string key without expiration
type RedisQueryStore struct {
	client *redis.Client
	key    string
}

var _ QueryStore = (*RedisQueryStore)(nil)

func NewRedisQueryStore(client *redis.Client, key string) *RedisQueryStore {
	return &RedisQueryStore{client: client, key: key}
}

func (s *RedisQueryStore) Load(ctx context.Context) (string, error) {
	return s.client.Get(ctx, s.key)
}

func (s *RedisQueryStore) Save(ctx context.Context, query string) error {
	return s.client.Set(ctx, s.key, query, 0)
}

func (s *RedisQueryStore) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	details, err := s.client.HealthCheck(ctx)
	details["type"] = "redis"
	details["key"] = s.key
	if err != nil {
		return down(err, details)
	}
	return up(details)
}
