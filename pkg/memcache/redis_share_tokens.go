package memcache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const shareKeyPrefix = "itinera:share:"

type RedisShareTokens struct {
	client *redis.Client
}

func NewRedisShareTokens(client *redis.Client) *RedisShareTokens {
	return &RedisShareTokens{client: client}
}

func (s *RedisShareTokens) Set(ctx context.Context, token string, tripID string, ttl time.Duration) error {
	return s.client.Set(ctx, shareKeyPrefix+token, tripID, ttl).Err()
}

func (s *RedisShareTokens) Get(ctx context.Context, token string) (string, bool, error) {
	tripID, err := s.client.Get(ctx, shareKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return tripID, true, nil
}
