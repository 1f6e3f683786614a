package components

import (
	"checkout-service/internal/handler"
	"checkout-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewDiscoveryHandler,
	),
	fx.Invoke(handler.NewRouter),
)
