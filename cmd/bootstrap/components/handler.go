package components

import (
	"car-rental-ops/internal/handler"
	"car-rental-ops/internal/handler/api"
	"car-rental-ops/internal/handler/middleware"
	"car-rental-ops/internal/pkg/clock"
	"car-rental-ops/internal/pkg/config"
	"car-rental-ops/internal/usecase"
	"car-rental-ops/internal/usecase/commands"
	"car-rental-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config, q queries.BookingQueries, cmds commands.BookingCommands) *api.BookingHandler {
			return api.NewBookingHandler(q, cmds, cfg.Booking.SignedListStatuses)
		},
		api.NewAgreementHandler,
		func(cfg config.Config, q queries.FleetQueries, cmds commands.FleetCommands, clk clock.Clock) *api.FleetHandler {
			return api.NewFleetHandler(q, cmds, cfg.Booking.BlockingAgreementStatuses, clk)
		},
		func(cfg config.Config, v usecase.TokenValidator) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(v, cfg.JWT.AdminRoles)
		},
		func(b *api.BookingHandler, a *api.AgreementHandler, f *api.FleetHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Agreement: a, Fleet: f}
		},
	),
	fx.Invoke(handler.NewRouter),
)
