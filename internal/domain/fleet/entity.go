package fleet

import (
	"github.com/google/uuid"

	"car-rental-ops/internal/pkg/errs"
)

var ErrUnknownVehicleStatus = errs.ErrUnknownVehicleStatus

type VehicleStatus string

const (
	VehicleStatusActive   VehicleStatus = "active"
	VehicleStatusInactive VehicleStatus = "inactive"
)

func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch VehicleStatus(s) {
	case VehicleStatusActive, VehicleStatusInactive:
		return VehicleStatus(s), nil
	default:
		return "", ErrUnknownVehicleStatus
	}
}

// Vehicle is one physical unit, identified on the road by its registration.
type Vehicle struct {
	ID                 uuid.UUID
	RegistrationNumber string
	CarID              uuid.UUID
	Status             VehicleStatus
}

// CarModel is the catalog entry shared by many vehicles.
type CarModel struct {
	ID       uuid.UUID
	Brand    string
	Name     string
	ImageURL string
}
