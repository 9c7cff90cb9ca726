package components

import (
	"log/slog"

	"car-rental-ops/internal/pkg/clock"
	"car-rental-ops/internal/pkg/config"
	"car-rental-ops/internal/usecase"
	"car-rental-ops/internal/usecase/commands"
	"car-rental-ops/internal/usecase/queries"
	"car-rental-ops/internal/usecase/shared"

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
		func(cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) commands.BookingCommands {
			return commands.NewBookingUseCase(uow, clk, cfg.Booking.PendingPaymentTTL, logger)
		},
		commands.NewFleetUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAgreementQueries,
		queries.NewFleetQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
