package components

import (
	"parkdesk/internal/handler"
	"parkdesk/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotsHandler,
		api.NewBookingsHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
