package components

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

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
	NewReservationFactory,
)

// NewReservationFactory decides "today" in the archival time zone so bookings
// and archival agree on the calendar.
func NewReservationFactory(clk clock.Clock, cfg config.Config) (*reservation.Factory, error) {
	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return nil, errs.Wrapf(err, "invalid ARCHIVE_TIMEZONE %q", cfg.Scheduler.TimeZone)
	}
	return reservation.NewFactory(clk, loc), nil
}

func NewArchivalCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	lock shared.RunLock,
	publisher shared.EventPublisher,
	clk clock.Clock,
	cfg config.Config,
) commands.ArchivalCommands {
	return commands.NewArchivalCommands(uow, factory, lock, cfg.Scheduler.LockTTL, publisher, clk)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomCommands,
		commands.NewReservationCommands,
		NewArchivalCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewReservationQueries,
		queries.NewHistoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
