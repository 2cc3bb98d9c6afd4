package components

import (
	"parkdesk/internal/infra/gateway"
	"parkdesk/internal/usecase/commands"
	"parkdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			gateway.New,
			fx.As(new(commands.StateGateway)),
			fx.As(new(queries.StateReader)),
		),
	),
)
