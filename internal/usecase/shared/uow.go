package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"car-rental-ops/internal/domain/booking"
	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction, replaying it on serialization
	// failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Fleet() FleetRepository
	Notifications() NotificationRepository
	DB() query.DBTX
}

type BookingRepository interface {
	// GetForUpdate locks the booking row until the transaction ends.
	GetForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*booking.Booking, error)
	// ListStalePending locks pending_payment bookings created before cutoff,
	// skipping rows another transaction holds.
	ListStalePending(ctx context.Context, tx query.DBTX, cutoff time.Time) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx query.DBTX, b *booking.Booking) error
}

type FleetRepository interface {
	UpdateStatus(ctx context.Context, tx query.DBTX, vehicleID uuid.UUID, status fleet.VehicleStatus) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
