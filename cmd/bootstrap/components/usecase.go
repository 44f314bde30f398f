package components

import (
	"huntbook/internal/pkg/clock"
	"huntbook/internal/usecase/commands"
	"huntbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewPolicyReader,
		queries.NewBookingQueries,
	),
)

// NewPolicyReader reuses the command-side policy repository for reads.
func NewPolicyReader(repo commands.PolicyRepository) queries.PolicyReader {
	return repo
}
