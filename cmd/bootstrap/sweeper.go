package bootstrap

import (
	"context"
	"log/slog"

	"checkout-service/internal/infra/memstore"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(registerSweeper),
)

func registerSweeper(lc fx.Lifecycle, sweeper *memstore.Sweeper, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting session sweeper")
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping session sweeper")
			sweeper.Stop()
			return nil
		},
	})
}
