//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-ops/internal/domain/booking"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CarID         uuid.UUID
	PickupDate    time.Time
	DropoffDate   time.Time
	Status        booking.Status
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CarBrand      string
	CarName       string
	CarImageURL   string
}

func NewBookingBuilder() *BookingBuilder {
	created := time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)
	pickup := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		CarID:         uuid.New(),
		PickupDate:    pickup,
		DropoffDate:   pickup.Add(72 * time.Hour),
		Status:        booking.StatusConfirmed,
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
		CustomerPhone: "+44 7700 900123",
		TotalAmount:   decimal.RequireFromString("249.50"),
		CreatedAt:     created,
		UpdatedAt:     created,
		CarBrand:      "Toyota",
		CarName:       "Corolla",
		CarImageURL:   "https://cdn.example.com/corolla.png",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	b.UpdatedAt = t
	return b
}

// Build methods
func (b *BookingBuilder) Build() *booking.Booking {
	return &booking.Booking{
		ID:            b.ID,
		CarID:         b.CarID,
		PickupDate:    b.PickupDate,
		DropoffDate:   b.DropoffDate,
		Status:        b.Status,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TotalAmount:   b.TotalAmount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID: b.ID,
		Car: queries.CarSummary{
			ID:       b.CarID,
			Brand:    b.CarBrand,
			Name:     b.CarName,
			ImageURL: b.CarImageURL,
		},
		PickupDate:    b.PickupDate,
		DropoffDate:   b.DropoffDate,
		Status:        b.Status.String(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TotalAmount:   b.TotalAmount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildRow() query.Booking {
	return query.Booking{
		ID:            b.ID,
		CarID:         b.CarID,
		PickupDate:    pgtype.Timestamptz{Time: b.PickupDate, Valid: true},
		DropoffDate:   pgtype.Timestamptz{Time: b.DropoffDate, Valid: true},
		Status:        b.Status.String(),
		CustomerName:  pgtype.Text{String: b.CustomerName, Valid: true},
		CustomerEmail: pgtype.Text{String: b.CustomerEmail, Valid: true},
		CustomerPhone: pgtype.Text{String: b.CustomerPhone, Valid: true},
		TotalAmount:   pgtype.Text{String: b.TotalAmount.String(), Valid: true},
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildRowWithCar() query.BookingWithCarRow {
	return query.BookingWithCarRow{
		Booking:     b.BuildRow(),
		CarBrand:    pgtype.Text{String: b.CarBrand, Valid: true},
		CarName:     pgtype.Text{String: b.CarName, Valid: true},
		CarImageURL: pgtype.Text{String: b.CarImageURL, Valid: true},
	}
}
