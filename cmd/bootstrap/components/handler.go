package components

import (
	"storefront-console/internal/handler"
	"storefront-console/internal/handler/api"
	"storefront-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewPromotionAdminHandler,
		middleware.NewRoleMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
