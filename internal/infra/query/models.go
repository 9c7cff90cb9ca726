package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID            uuid.UUID          `json:"id"`
	CarID         uuid.UUID          `json:"car_id"`
	PickupDate    pgtype.Timestamptz `json:"pickup_date"`
	DropoffDate   pgtype.Timestamptz `json:"dropoff_date"`
	Status        string             `json:"status"`
	CustomerName  pgtype.Text        `json:"customer_name"`
	CustomerEmail pgtype.Text        `json:"customer_email"`
	CustomerPhone pgtype.Text        `json:"customer_phone"`
	TotalAmount   pgtype.Text        `json:"total_amount"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type BookingWithCarRow struct {
	Booking
	CarBrand    pgtype.Text `json:"car_brand"`
	CarName     pgtype.Text `json:"car_name"`
	CarImageURL pgtype.Text `json:"car_image_url"`
}

type Agreement struct {
	ID                    uuid.UUID          `json:"id"`
	BookingID             pgtype.UUID        `json:"booking_id"`
	CustomerSignatureData pgtype.Text        `json:"customer_signature_data"`
	UnsignedAgreementURL  pgtype.Text        `json:"unsigned_agreement_url"`
	SignedAgreementURL    pgtype.Text        `json:"signed_agreement_url"`
	Status                pgtype.Text        `json:"status"`
	VehicleRegistration   pgtype.Text        `json:"vehicle_registration"`
	StartDate             pgtype.Timestamptz `json:"start_date"`
	EndDate               pgtype.Timestamptz `json:"end_date"`
	CreatedAt             pgtype.Timestamptz `json:"created_at"`
}

type FleetVehicleRow struct {
	ID                 uuid.UUID   `json:"id"`
	RegistrationNumber string      `json:"registration_number"`
	CarID              uuid.UUID   `json:"car_id"`
	Status             string      `json:"status"`
	CarBrand           pgtype.Text `json:"car_brand"`
	CarName            pgtype.Text `json:"car_name"`
	CarImageURL        pgtype.Text `json:"car_image_url"`
}
