package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-ops/internal/jobs"
	"car-rental-ops/internal/pkg/clock"
	"car-rental-ops/internal/pkg/config"
	"car-rental-ops/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewJobRunner,
		NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func NewJobRunner(cfg config.Config, bookings commands.BookingCommands, clk clock.Clock, logger *slog.Logger) *jobs.Runner {
	return jobs.NewRunner(bookings, clk, cfg.Scheduler.JobTimeout, logger)
}

func NewScheduler(cfg config.Config, runner *jobs.Runner, logger *slog.Logger) (*jobs.Scheduler, error) {
	return jobs.NewScheduler(cfg.Scheduler, runner, logger)
}

func StartScheduler(lc fx.Lifecycle, cfg config.Config, s *jobs.Scheduler, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("Cron scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
