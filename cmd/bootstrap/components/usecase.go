package components

import (
	"github.com/djsutherland/chips-with-friends/internal/pkg/clock"
	"github.com/djsutherland/chips-with-friends/internal/usecase/commands"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"
	"github.com/djsutherland/chips-with-friends/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCardCommands,
		commands.NewUseCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCardQueries,
		queries.NewUseQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		shared.NewTokenValidator,
	),
)
