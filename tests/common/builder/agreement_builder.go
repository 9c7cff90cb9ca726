//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AgreementBuilder struct {
	ID                    uuid.UUID
	BookingID             *uuid.UUID
	CustomerSignatureData string
	UnsignedAgreementURL  string
	SignedAgreementURL    string
	Status                string
	VehicleRegistration   string
	StartDate             time.Time
	EndDate               time.Time
	CreatedAt             time.Time
}

// NewAgreementBuilder starts from an agreement with no signatures at all.
func NewAgreementBuilder() *AgreementBuilder {
	bookingID := uuid.New()
	start := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	return &AgreementBuilder{
		ID:                  uuid.New(),
		BookingID:           &bookingID,
		Status:              "pending",
		VehicleRegistration: "AB12 CDE",
		StartDate:           start,
		EndDate:             start.Add(72 * time.Hour),
		CreatedAt:           start.Add(-24 * time.Hour),
	}
}

func (b *AgreementBuilder) With(mutate func(*AgreementBuilder)) *AgreementBuilder {
	mutate(b)
	return b
}

func (b *AgreementBuilder) WithBookingID(id uuid.UUID) *AgreementBuilder {
	b.BookingID = &id
	return b
}

func (b *AgreementBuilder) WithoutBooking() *AgreementBuilder {
	b.BookingID = nil
	return b
}

func (b *AgreementBuilder) WithCustomerSignature(data string) *AgreementBuilder {
	b.CustomerSignatureData = data
	return b
}

func (b *AgreementBuilder) WithUnsignedURL(url string) *AgreementBuilder {
	b.UnsignedAgreementURL = url
	return b
}

func (b *AgreementBuilder) WithSignedURL(url string) *AgreementBuilder {
	b.SignedAgreementURL = url
	return b
}

func (b *AgreementBuilder) WithStatus(status string) *AgreementBuilder {
	b.Status = status
	return b
}

func (b *AgreementBuilder) WithRegistration(reg string) *AgreementBuilder {
	b.VehicleRegistration = reg
	return b
}

func (b *AgreementBuilder) WithPeriod(start, end time.Time) *AgreementBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

// FullySigned sets a customer signature and the unsigned-document admin signal.
func (b *AgreementBuilder) FullySigned() *AgreementBuilder {
	b.CustomerSignatureData = "sig.png"
	b.UnsignedAgreementURL = "draft.pdf"
	return b
}

// Build methods
func (b *AgreementBuilder) Build() agreement.Agreement {
	return agreement.Agreement{
		ID:                    b.ID,
		BookingID:             b.BookingID,
		CustomerSignatureData: b.CustomerSignatureData,
		UnsignedAgreementURL:  b.UnsignedAgreementURL,
		SignedAgreementURL:    b.SignedAgreementURL,
		Status:                b.Status,
		VehicleRegistration:   b.VehicleRegistration,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
	}
}

func (b *AgreementBuilder) BuildRow() query.Agreement {
	var bookingID pgtype.UUID
	if b.BookingID != nil {
		bookingID = pgtype.UUID{Bytes: *b.BookingID, Valid: true}
	}
	return query.Agreement{
		ID:                    b.ID,
		BookingID:             bookingID,
		CustomerSignatureData: nullableText(b.CustomerSignatureData),
		UnsignedAgreementURL:  nullableText(b.UnsignedAgreementURL),
		SignedAgreementURL:    nullableText(b.SignedAgreementURL),
		Status:                nullableText(b.Status),
		VehicleRegistration:   nullableText(b.VehicleRegistration),
		StartDate:             pgtype.Timestamptz{Time: b.StartDate, Valid: true},
		EndDate:               pgtype.Timestamptz{Time: b.EndDate, Valid: true},
		CreatedAt:             pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func nullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
