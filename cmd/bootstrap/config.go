package bootstrap

import (
	"checkout-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		func(cfg config.Config) config.IdempotencyConfig { return cfg.Idempotency },
	),
)
