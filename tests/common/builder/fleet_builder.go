//go:build unit || e2e

package builder

import (
	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VehicleBuilder struct {
	ID                 uuid.UUID
	RegistrationNumber string
	CarID              uuid.UUID
	Status             fleet.VehicleStatus
	Brand              string
	Name               string
	ImageURL           string
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		ID:                 uuid.New(),
		RegistrationNumber: "AB12 CDE",
		CarID:              uuid.New(),
		Status:             fleet.VehicleStatusActive,
		Brand:              "Toyota",
		Name:               "Corolla",
		ImageURL:           "https://cdn.example.com/corolla.png",
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) WithRegistration(reg string) *VehicleBuilder {
	b.RegistrationNumber = reg
	return b
}

func (b *VehicleBuilder) WithCarID(id uuid.UUID) *VehicleBuilder {
	b.CarID = id
	return b
}

func (b *VehicleBuilder) WithStatus(status fleet.VehicleStatus) *VehicleBuilder {
	b.Status = status
	return b
}

// Build methods
func (b *VehicleBuilder) Build() fleet.Vehicle {
	return fleet.Vehicle{
		ID:                 b.ID,
		RegistrationNumber: b.RegistrationNumber,
		CarID:              b.CarID,
		Status:             b.Status,
	}
}

func (b *VehicleBuilder) BuildView() *queries.FleetVehicleView {
	return &queries.FleetVehicleView{
		Vehicle: b.Build(),
		Car: queries.CarSummary{
			ID:       b.CarID,
			Brand:    b.Brand,
			Name:     b.Name,
			ImageURL: b.ImageURL,
		},
	}
}

func (b *VehicleBuilder) BuildRow() query.FleetVehicleRow {
	return query.FleetVehicleRow{
		ID:                 b.ID,
		RegistrationNumber: b.RegistrationNumber,
		CarID:              b.CarID,
		Status:             string(b.Status),
		CarBrand:           pgtype.Text{String: b.Brand, Valid: true},
		CarName:            pgtype.Text{String: b.Name, Valid: true},
		CarImageURL:        pgtype.Text{String: b.ImageURL, Valid: true},
	}
}
