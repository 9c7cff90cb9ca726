package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"car-rental-ops/internal/domain/booking"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/pkg/clock"
	"car-rental-ops/internal/pkg/errs"
	"car-rental-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.ErrBookingNotFound
	ErrInvalidStatusTransition = errs.ErrInvalidStatusTransition
	ErrUnknownBookingStatus    = errs.ErrUnknownBookingStatus
)

type StatusChangeResult struct {
	BookingID      uuid.UUID
	PreviousStatus booking.Status
	Status         booking.Status
	UpdatedAt      time.Time
}

type BookingCommands interface {
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, actorID uuid.UUID) (*StatusChangeResult, error)
	// ExpireStalePending expires bookings left in pending_payment longer than
	// the configured TTL and returns how many were expired.
	ExpireStalePending(ctx context.Context, now time.Time) (int, error)
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	pendingTTL time.Duration
	logger     *slog.Logger
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, pendingTTL time.Duration, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		clock:      clk,
		pendingTTL: pendingTTL,
		logger:     logger,
	}
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, actorID uuid.UUID) (*StatusChangeResult, error) {
	next, err := booking.ParseStatus(newStatus)
	if err != nil {
		return nil, ErrUnknownBookingStatus
	}

	var result *StatusChangeResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().GetForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		prev := b.Status
		if derr = b.TransitionTo(next, uc.clock.Now()); derr != nil {
			return errs.Wrapf(derr, "%s -> %s", prev, next)
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if derr = uc.enqueueStatusChanged(ctx, tx, b, prev, &actorID); derr != nil {
			return derr
		}

		result = &StatusChangeResult{
			BookingID:      b.ID,
			PreviousStatus: prev,
			Status:         b.Status,
			UpdatedAt:      b.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking status changed",
		"booking_id", result.BookingID,
		"from", result.PreviousStatus,
		"to", result.Status,
		"actor_id", actorID)
	return result, nil
}

func (uc *bookingUseCaseImpl) ExpireStalePending(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-uc.pendingTTL)

	expired := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = 0
		stale, derr := tx.Bookings().ListStalePending(ctx, tx.DB(), cutoff)
		if derr != nil {
			return derr
		}

		for _, b := range stale {
			// paid or too recent rows are left alone
			if !b.IsStalePending(cutoff) {
				continue
			}
			prev := b.Status
			if derr = b.TransitionTo(booking.StatusExpired, now); derr != nil {
				return derr
			}
			if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
				return derr
			}
			if derr = uc.enqueueStatusChanged(ctx, tx, b, prev, nil); derr != nil {
				return derr
			}
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

func (uc *bookingUseCaseImpl) enqueueStatusChanged(ctx context.Context, tx shared.Tx, b *booking.Booking, prev booking.Status, actorID *uuid.UUID) error {
	payload, err := json.Marshal(shared.BookingStatusChanged{
		BookingID:     b.ID,
		From:          prev.String(),
		To:            b.Status.String(),
		ActorID:       actorID,
		CustomerEmail: b.CustomerEmail,
		ChangedAt:     b.UpdatedAt,
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking status notification")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(),
		shared.NotificationKindBookingStatusChanged,
		shared.NotificationTopicBookings,
		payload,
		b.UpdatedAt,
	)
}
