package components

import (
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/config"
	"hub-booking/internal/usecase"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/usecase/queries"
	"hub-booking/internal/worker"

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
	func(cfg config.Config) commands.MaintenancePolicy {
		return worker.MaintenancePolicy(cfg.Worker)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		// The recurrence expander writes each occurrence through the same
		// locked create path as a single booking.
		func(c commands.BookingCommands) commands.BookingWriter { return c },
		func(q queries.ConflictQueries) commands.ConflictChecker { return q },
		commands.NewRecurrenceExpander,
		commands.NewRecurringBookingUseCase,
		commands.NewAmenityUseCase,
		commands.NewEventUseCase,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAmenityQueries,
		queries.NewBookingQueries,
		queries.NewEventQueries,
		queries.NewAvailabilityQueries,
		queries.NewConflictQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
