package components

import (
	"log/slog"

	"course-cart/internal/infra/persistence"
	"course-cart/internal/pkg/config"
	"course-cart/internal/usecase"
	"course-cart/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			persistence.NewAdapter,
			fx.As(new(shared.StorageFactory)),
		),
		fx.Annotate(
			NewSessionRegistry,
			fx.As(new(usecase.SessionProvider)),
		),
	),
)

func NewSessionRegistry(storage shared.StorageFactory, cfg config.SessionConfig, logger *slog.Logger) *usecase.SessionRegistry {
	return usecase.NewSessionRegistry(storage, logger, usecase.WithMaxSessions(cfg.MaxProfiles))
}
