package bootstrap

import (
	"parkdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
