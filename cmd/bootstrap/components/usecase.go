package components

import (
	"parkdesk/internal/pkg/clock"
	"parkdesk/internal/pkg/policy"
	"parkdesk/internal/usecase/commands"
	"parkdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewOperationLock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewInventoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(reader queries.StateReader, pol policy.InventoryPolicy) queries.BoardQueries {
			return queries.NewBoardQueries(reader, pol.LotName)
		},
	),
)
