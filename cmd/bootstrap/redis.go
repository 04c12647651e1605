package bootstrap

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/lock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRunLock,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if !cfg.Redis.Enabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrapf(err, "failed to reach redis at %s", cfg.Redis.Addr)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewRunLock(client *redis.Client) shared.RunLock {
	if client == nil {
		slog.Info("redis not configured, archival lock is process-local")
		return lock.NewLocal()
	}
	return lock.NewRedisLock(client)
}
