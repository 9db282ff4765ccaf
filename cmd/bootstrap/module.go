package bootstrap

import (
	"course-cart/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
