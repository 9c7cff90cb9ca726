package repository

//go:generate mockgen -source=fleet.go -destination=../../../tests/mock/repository/fleet.go -package=repositorymock

import (
	"context"

	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"

	"github.com/google/uuid"
)

type FleetWriteQueries interface {
	UpdateFleetVehicleStatus(ctx context.Context, db query.DBTX, arg query.UpdateFleetVehicleStatusParams) (int64, error)
}

type FleetRepository struct {
	queries FleetWriteQueries
}

func NewFleetRepository(queries FleetWriteQueries) *FleetRepository {
	return &FleetRepository{queries: queries}
}

func (r *FleetRepository) UpdateStatus(ctx context.Context, tx query.DBTX, vehicleID uuid.UUID, status fleet.VehicleStatus) error {
	n, err := r.queries.UpdateFleetVehicleStatus(ctx, tx, query.UpdateFleetVehicleStatusParams{
		ID:     vehicleID,
		Status: string(status),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update fleet vehicle status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("fleet vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
