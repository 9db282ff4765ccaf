package bootstrap

import (
	"course-cart/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the parts of config.Config that constructors take
// directly.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.StorageConfig { return cfg.Storage },
	func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
	func(cfg config.Config) config.SessionConfig { return cfg.Session },
)
