package components

import (
	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/pkg/clock"
	"tee-sheet/internal/pkg/config"
	"tee-sheet/internal/pkg/errs"
	"tee-sheet/internal/usecase/commands"
	"tee-sheet/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewGridSpec,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTeeTimeQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTeeTimeCommands,
	),
)

// NewGridSpec derives the daily tee grid from configuration. A broken grid
// (unparsable times, last not after first) aborts startup.
func NewGridSpec(cfg config.Config) (queries.GridSpec, error) {
	first, err := teetime.ParseTimeOfDay(cfg.TeeSheet.FirstTee)
	if err != nil {
		return queries.GridSpec{}, errs.Wrap(err, "invalid first tee time")
	}
	last, err := teetime.ParseTimeOfDay(cfg.TeeSheet.LastTee)
	if err != nil {
		return queries.GridSpec{}, errs.Wrap(err, "invalid last tee time")
	}
	tees, err := teetime.DayGrid(first, last, cfg.TeeSheet.Interval)
	if err != nil {
		return queries.GridSpec{}, errs.Wrap(err, "invalid tee grid")
	}
	return queries.GridSpec{
		Tees:       tees,
		MaxPlayers: cfg.TeeSheet.MaxPlayers,
		PriceCents: cfg.TeeSheet.PriceCents,
	}, nil
}
