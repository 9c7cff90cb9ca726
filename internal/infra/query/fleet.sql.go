package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func collectFleetVehicles(rows pgx.Rows) ([]FleetVehicleRow, error) {
	defer rows.Close()
	var items []FleetVehicleRow
	for rows.Next() {
		var i FleetVehicleRow
		if err := rows.Scan(
			&i.ID, &i.RegistrationNumber, &i.CarID, &i.Status,
			&i.CarBrand, &i.CarName, &i.CarImageURL,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listActiveFleetVehicles = `-- name: ListActiveFleetVehicles :many
SELECT f.id, f.registration_number, f.car_id, f.status,
       c.brand, c.name, c.image_url
FROM fleet_vehicles f
LEFT JOIN cars c ON c.id = f.car_id
WHERE f.status = 'active'
  AND ($1::uuid IS NULL OR f.car_id = $1::uuid)
ORDER BY f.created_at ASC, f.id ASC
`

func (q *Queries) ListActiveFleetVehicles(ctx context.Context, db DBTX, carID pgtype.UUID) ([]FleetVehicleRow, error) {
	rows, err := db.Query(ctx, listActiveFleetVehicles, carID)
	if err != nil {
		return nil, err
	}
	return collectFleetVehicles(rows)
}

const listFleetVehicles = `-- name: ListFleetVehicles :many
SELECT f.id, f.registration_number, f.car_id, f.status,
       c.brand, c.name, c.image_url
FROM fleet_vehicles f
LEFT JOIN cars c ON c.id = f.car_id
ORDER BY f.created_at ASC, f.id ASC
`

func (q *Queries) ListFleetVehicles(ctx context.Context, db DBTX) ([]FleetVehicleRow, error) {
	rows, err := db.Query(ctx, listFleetVehicles)
	if err != nil {
		return nil, err
	}
	return collectFleetVehicles(rows)
}

const updateFleetVehicleStatus = `-- name: UpdateFleetVehicleStatus :execrows
UPDATE fleet_vehicles
SET status = $2, updated_at = now()
WHERE id = $1
`

type UpdateFleetVehicleStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (q *Queries) UpdateFleetVehicleStatus(ctx context.Context, db DBTX, arg UpdateFleetVehicleStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateFleetVehicleStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
