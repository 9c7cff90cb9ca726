package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const agreementColumns = `a.id, a.booking_id, a.customer_signature_data,
       a.unsigned_agreement_url, a.signed_agreement_url, a.status,
       a.vehicle_registration, a.start_date, a.end_date, a.created_at`

func scanAgreement(row pgx.Row, a *Agreement) error {
	return row.Scan(
		&a.ID, &a.BookingID, &a.CustomerSignatureData,
		&a.UnsignedAgreementURL, &a.SignedAgreementURL, &a.Status,
		&a.VehicleRegistration, &a.StartDate, &a.EndDate, &a.CreatedAt,
	)
}

func collectAgreements(rows pgx.Rows) ([]Agreement, error) {
	defer rows.Close()
	var items []Agreement
	for rows.Next() {
		var i Agreement
		if err := scanAgreement(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listAgreementsByBookingIDs = `-- name: ListAgreementsByBookingIDs :many
SELECT ` + agreementColumns + `
FROM agreements a
WHERE a.booking_id = ANY($1::uuid[])
ORDER BY a.created_at ASC, a.id ASC
`

func (q *Queries) ListAgreementsByBookingIDs(ctx context.Context, db DBTX, bookingIDs []string) ([]Agreement, error) {
	rows, err := db.Query(ctx, listAgreementsByBookingIDs, bookingIDs)
	if err != nil {
		return nil, err
	}
	return collectAgreements(rows)
}

const getAgreement = `-- name: GetAgreement :one
SELECT ` + agreementColumns + `
FROM agreements a
WHERE a.id = $1
`

func (q *Queries) GetAgreement(ctx context.Context, db DBTX, id uuid.UUID) (Agreement, error) {
	row := db.QueryRow(ctx, getAgreement, id)
	var i Agreement
	err := scanAgreement(row, &i)
	return i, err
}

// Registration matching happens in Go against fleet.NormalizeRegistration.
const listBlockingAgreements = `-- name: ListBlockingAgreements :many
SELECT ` + agreementColumns + `
FROM agreements a
WHERE a.status = ANY($1::text[])
  AND a.vehicle_registration IS NOT NULL
ORDER BY a.start_date ASC, a.id ASC
`

func (q *Queries) ListBlockingAgreements(ctx context.Context, db DBTX, statuses []string) ([]Agreement, error) {
	rows, err := db.Query(ctx, listBlockingAgreements, statuses)
	if err != nil {
		return nil, err
	}
	return collectAgreements(rows)
}
