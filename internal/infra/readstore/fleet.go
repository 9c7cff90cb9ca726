package readstore

//go:generate mockgen -source=fleet.go -destination=../../../tests/mock/readstore/fleet.go -package=readstoremock

import (
	"context"

	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/pkg/pgconv"
	"car-rental-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FleetReadQueries interface {
	ListActiveFleetVehicles(ctx context.Context, db query.DBTX, carID pgtype.UUID) ([]query.FleetVehicleRow, error)
	ListFleetVehicles(ctx context.Context, db query.DBTX) ([]query.FleetVehicleRow, error)
}

type FleetReadStore struct {
	queries FleetReadQueries
	db      query.DBTX
}

func NewFleetReadStore(queries FleetReadQueries, db query.DBTX) *FleetReadStore {
	return &FleetReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FleetReadStore) ListActive(ctx context.Context, carID *uuid.UUID) ([]*queries.FleetVehicleView, error) {
	rows, err := r.queries.ListActiveFleetVehicles(ctx, r.db, pgconv.UUIDPtrToPgtype(carID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active fleet vehicles", err)
	}
	return toFleetViews(rows), nil
}

func (r *FleetReadStore) ListAll(ctx context.Context) ([]*queries.FleetVehicleView, error) {
	rows, err := r.queries.ListFleetVehicles(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fleet vehicles", err)
	}
	return toFleetViews(rows), nil
}

func toFleetViews(rows []query.FleetVehicleRow) []*queries.FleetVehicleView {
	out := make([]*queries.FleetVehicleView, len(rows))
	for i, row := range rows {
		out[i] = &queries.FleetVehicleView{
			Vehicle: fleet.Vehicle{
				ID:                 row.ID,
				RegistrationNumber: row.RegistrationNumber,
				CarID:              row.CarID,
				Status:             fleet.VehicleStatus(row.Status),
			},
			Car: queries.CarSummary{
				ID:       row.CarID,
				Brand:    pgconv.TextOrEmpty(row.CarBrand),
				Name:     pgconv.TextOrEmpty(row.CarName),
				ImageURL: pgconv.TextOrEmpty(row.CarImageURL),
			},
		}
	}
	return out
}
