package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"
	"time"

	"car-rental-ops/internal/domain/booking"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	GetBookingForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	ListStalePendingBookings(ctx context.Context, db query.DBTX, cutoff pgtype.Timestamptz) ([]query.Booking, error)
	UpdateBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) ListStalePending(ctx context.Context, tx query.DBTX, cutoff time.Time) ([]*booking.Booking, error) {
	rows, err := r.queries.ListStalePendingBookings(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending bookings", err)
	}
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx query.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, query.UpdateBookingStatusParams{
		ID:        b.ID,
		Status:    b.Status.String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func toBooking(row query.Booking) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("unknown booking status "+row.Status, err)
	}
	amount, err := pgconv.DecimalFromText(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total amount", err)
	}
	return &booking.Booking{
		ID:            row.ID,
		CarID:         row.CarID,
		PickupDate:    pgconv.TimeFromPgtype(row.PickupDate),
		DropoffDate:   pgconv.TimeFromPgtype(row.DropoffDate),
		Status:        status,
		CustomerName:  pgconv.TextOrEmpty(row.CustomerName),
		CustomerEmail: pgconv.TextOrEmpty(row.CustomerEmail),
		CustomerPhone: pgconv.TextOrEmpty(row.CustomerPhone),
		TotalAmount:   amount,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
