package components

import (
	"checkout-service/internal/domain/catalog"
	paymentdomain "checkout-service/internal/domain/payment"
	"checkout-service/internal/infra/catalogstore"
	"checkout-service/internal/infra/memstore"
	"checkout-service/internal/infra/payment"
	"checkout-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		// Session store
		fx.Annotate(
			memstore.NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
		// Idempotency replay cache
		fx.Annotate(
			memstore.NewReplayStore,
			fx.As(new(shared.ReplayStore)),
		),
		// Catalog
		fx.Annotate(
			catalogstore.NewStaticCatalog,
			fx.As(new(catalog.Catalog)),
		),
		// Payment handler registry
		fx.Annotate(
			payment.NewStaticRegistry,
			fx.As(new(paymentdomain.Registry)),
		),
		// Background sweep
		memstore.NewSweeper,
	),
)
