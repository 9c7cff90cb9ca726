package queries

import (
	"time"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/domain/fleet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarSummary is the catalog metadata shown next to bookings and vehicles.
type CarSummary struct {
	ID       uuid.UUID `json:"id"`
	Brand    string    `json:"brand"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
}

type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	Car           CarSummary      `json:"car"`
	PickupDate    time.Time       `json:"pickup_date"`
	DropoffDate   time.Time       `json:"dropoff_date"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SignedBookingView pairs a booking with the agreement that made it qualify.
type SignedBookingView struct {
	Booking             BookingView
	AgreementID         uuid.UUID
	VehicleRegistration string
	Signatures          agreement.SignatureStatus
}

type AgreementSignatureView struct {
	AgreementID uuid.UUID
	BookingID   *uuid.UUID
	Status      string
	Signatures  agreement.SignatureStatus
}

type FleetVehicleView struct {
	Vehicle fleet.Vehicle
	Car     CarSummary
}

type FleetStatusView struct {
	Vehicle fleet.Vehicle
	Car     CarSummary
	OnRent  bool
}

type AvailabilityParams struct {
	CarID            *uuid.UUID
	Interval         *fleet.Interval
	BlockingStatuses []string
}
