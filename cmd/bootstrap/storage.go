package bootstrap

import (
	"context"
	"log/slog"

	"course-cart/internal/infra/db"
	"course-cart/internal/infra/kvstore"
	"course-cart/internal/pkg/config"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewKeyValueStorage,
	),
)

// NewKeyValueStorage opens the configured backend and closes it on stop.
func NewKeyValueStorage(lc fx.Lifecycle, cfg config.StorageConfig, logger *slog.Logger) (shared.KeyValueStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	switch cfg.Backend {
	case config.BackendRedis:
		client, err := kvstore.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("storage backend ready", "backend", cfg.Backend, "addr", cfg.RedisAddr)
		return kvstore.NewRedis(client, logger), nil

	case config.BackendPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		store := kvstore.NewPostgres(pool, logger)
		if err := store.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("storage backend ready", "backend", cfg.Backend)
		return store, nil

	case config.BackendMemory:
		logger.Info("storage backend ready", "backend", cfg.Backend)
		return kvstore.NewMemory(), nil
	}
	return nil, errs.Newf("unsupported storage backend %q", cfg.Backend)
}
