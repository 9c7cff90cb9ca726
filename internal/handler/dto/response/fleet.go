package response

import (
	"car-rental-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type FleetVehicleResponse struct {
	ID                 uuid.UUID   `json:"id"`
	RegistrationNumber string      `json:"registrationNumber"`
	Status             string      `json:"status"`
	Car                CarResponse `json:"car"`
}

type FleetStatusResponse struct {
	FleetVehicleResponse
	OnRent bool `json:"onRent"`
}

func fromCar(c queries.CarSummary) CarResponse {
	return CarResponse{ID: c.ID, Brand: c.Brand, Name: c.Name, ImageURL: c.ImageURL}
}

func FromFleetVehicleViews(views []*queries.FleetVehicleView) []*FleetVehicleResponse {
	out := make([]*FleetVehicleResponse, len(views))
	for i, v := range views {
		out[i] = &FleetVehicleResponse{
			ID:                 v.Vehicle.ID,
			RegistrationNumber: v.Vehicle.RegistrationNumber,
			Status:             string(v.Vehicle.Status),
			Car:                fromCar(v.Car),
		}
	}
	return out
}

func FromFleetStatusViews(views []*queries.FleetStatusView) []*FleetStatusResponse {
	out := make([]*FleetStatusResponse, len(views))
	for i, v := range views {
		out[i] = &FleetStatusResponse{
			FleetVehicleResponse: FleetVehicleResponse{
				ID:                 v.Vehicle.ID,
				RegistrationNumber: v.Vehicle.RegistrationNumber,
				Status:             string(v.Vehicle.Status),
				Car:                fromCar(v.Car),
			},
			OnRent: v.OnRent,
		}
	}
	return out
}
