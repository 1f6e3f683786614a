package components

import (
	"checkout-service/internal/domain/session"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			session.NewSequenceIDGenerator,
			fx.As(new(session.IDGenerator)),
		),
		session.NewLineItemFactory,
		commands.NewCheckoutCommands,
		queries.NewCheckoutQueries,
		queries.NewCatalogQueries,
		queries.NewDiscoveryQueries,
	),
)
