package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func InitRedis(ctx context.Context, address, password string, database int) (*redis.Client, error) {
	options := &redis.Options{
		Addr: address,
		DB:   database,
	}
	if password != "" {
		options.Password = password
	}
	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Info().Str("address", address).Int("database", database).Msg("Connected to Redis")
	return client, nil
}
