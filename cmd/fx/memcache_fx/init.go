package memcache_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"itinera/internal/config"
	"itinera/internal/infra"
	mem "itinera/pkg/memcache"
)

var Module = fx.Provide(provideShareTokenStore)

func provideShareTokenStore(lc fx.Lifecycle, cfg config.Config) (mem.ShareTokenStore, error) {
	switch cfg.ShareStore {
	case "", "memory":
		return mem.NewShareTokens(), nil
	case "redis":
		client, err := infra.InitRedis(context.Background(), cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return mem.NewRedisShareTokens(client), nil
	default:
		return nil, fmt.Errorf("unsupported share store: %s. Use 'memory' or 'redis'", cfg.ShareStore)
	}
}
