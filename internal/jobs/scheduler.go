package jobs

import (
	"log/slog"
	"time"

	"car-rental-ops/internal/pkg/config"
	"car-rental-ops/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
	logger *slog.Logger
}

// NewScheduler registers every job; specs use the six-field (seconds) format.
func NewScheduler(cfg config.SchedulerConfig, runner *Runner, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		cron:   c,
		runner: runner,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(cfg.ExpirePendingCron, s.runner.ExpirePendingBookings); err != nil {
		return nil, errs.Wrapf(err, "register expire pending job with spec %q", cfg.ExpirePendingCron)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started", "entries", len(s.cron.Entries()))
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
