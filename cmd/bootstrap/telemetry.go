package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-ops/internal/pkg/config"
	"car-rental-ops/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(StartTelemetry),
)

func StartTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	shutdown := telemetry.Setup(context.Background(), cfg.Telemetry, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
}
