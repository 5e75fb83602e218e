package components

import (
	"time"

	"shift-booking/internal/pkg/clock"
	"shift-booking/internal/pkg/config"
	"shift-booking/internal/usecase/commands"
	"shift-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingLocation,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewShiftCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewShiftQueries,
	),
)

func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
