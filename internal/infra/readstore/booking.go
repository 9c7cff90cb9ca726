package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

import (
	"context"

	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/pkg/pgconv"
	"car-rental-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsWithCarByStatuses(ctx context.Context, db query.DBTX, statuses []string) ([]query.BookingWithCarRow, error)
	GetBookingWithCar(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingWithCarRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListWithCarByStatuses(ctx context.Context, statuses []string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsWithCarByStatuses(ctx, r.db, statuses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by status", err)
	}

	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingWithCar(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row)
}

func toBookingView(row query.BookingWithCarRow) (*queries.BookingView, error) {
	amount, err := pgconv.DecimalFromText(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total amount", err)
	}
	return &queries.BookingView{
		ID: row.ID,
		Car: queries.CarSummary{
			ID:       row.CarID,
			Brand:    pgconv.TextOrEmpty(row.CarBrand),
			Name:     pgconv.TextOrEmpty(row.CarName),
			ImageURL: pgconv.TextOrEmpty(row.CarImageURL),
		},
		PickupDate:    pgconv.TimeFromPgtype(row.PickupDate),
		DropoffDate:   pgconv.TimeFromPgtype(row.DropoffDate),
		Status:        row.Status,
		CustomerName:  pgconv.TextOrEmpty(row.CustomerName),
		CustomerEmail: pgconv.TextOrEmpty(row.CustomerEmail),
		CustomerPhone: pgconv.TextOrEmpty(row.CustomerPhone),
		TotalAmount:   amount,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
