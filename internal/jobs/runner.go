package jobs

import (
	"context"
	"log/slog"
	"time"

	"car-rental-ops/internal/pkg/clock"
	"car-rental-ops/internal/usecase/commands"
)

// Runner holds the maintenance jobs triggered by the scheduler. Each job
// bounds its own run with the configured timeout.
type Runner struct {
	bookings commands.BookingCommands
	clock    clock.Clock
	timeout  time.Duration
	logger   *slog.Logger
}

func NewRunner(bookings commands.BookingCommands, clk clock.Clock, timeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		bookings: bookings,
		clock:    clk,
		timeout:  timeout,
		logger:   logger,
	}
}

// ExpirePendingBookings expires bookings stuck in pending_payment.
func (r *Runner) ExpirePendingBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := r.clock.Now()
	n, err := r.bookings.ExpireStalePending(ctx, start)
	if err != nil {
		r.logger.ErrorContext(ctx, "expire pending bookings failed", "error", err)
		return
	}
	if n > 0 {
		r.logger.InfoContext(ctx, "expired pending bookings", "count", n)
		return
	}
	r.logger.DebugContext(ctx, "no pending bookings to expire")
}
