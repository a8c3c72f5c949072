package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps quota counters in Redis so the daily quota holds
// across replicas and restarts. Keys carry the UTC-day window and
// expire two days after creation.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if prefix == "" {
		prefix = "swc:quota"
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) Incr(ctx context.Context, key string, now time.Time) (int64, error) {
	redisKey := s.prefix + ":" + WindowKey(key, now)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, 48*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis incr quota: %w", err)
	}

	return incr.Val(), nil
}
