package queries

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports.go -package=queriesmock

import (
	"context"

	"car-rental-ops/internal/domain/agreement"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	ListWithCarByStatuses(ctx context.Context, statuses []string) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type AgreementReadStore interface {
	ListByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) ([]agreement.Agreement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*agreement.Agreement, error)
	ListBlocking(ctx context.Context, statuses []string) ([]agreement.Agreement, error)
}

type FleetReadStore interface {
	ListActive(ctx context.Context, carID *uuid.UUID) ([]*FleetVehicleView, error)
	ListAll(ctx context.Context) ([]*FleetVehicleView, error)
}
