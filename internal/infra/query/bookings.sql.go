package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `b.id, b.car_id, b.pickup_date, b.dropoff_date, b.status,
       b.customer_name, b.customer_email, b.customer_phone,
       b.total_amount::text, b.created_at, b.updated_at`

func scanBooking(row pgx.Row, b *Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.CarID, &b.PickupDate, &b.DropoffDate, &b.Status,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.TotalAmount, &b.CreatedAt, &b.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

const listBookingsWithCarByStatuses = `-- name: ListBookingsWithCarByStatuses :many
SELECT ` + bookingColumns + `,
       c.brand, c.name, c.image_url
FROM bookings b
LEFT JOIN cars c ON c.id = b.car_id
WHERE b.status = ANY($1::text[])
ORDER BY b.pickup_date DESC, b.id DESC
`

func (q *Queries) ListBookingsWithCarByStatuses(ctx context.Context, db DBTX, statuses []string) ([]BookingWithCarRow, error) {
	rows, err := db.Query(ctx, listBookingsWithCarByStatuses, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingWithCarRow
	for rows.Next() {
		var i BookingWithCarRow
		if err := scanBooking(rows, &i.Booking, &i.CarBrand, &i.CarName, &i.CarImageURL); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingWithCar = `-- name: GetBookingWithCar :one
SELECT ` + bookingColumns + `,
       c.brand, c.name, c.image_url
FROM bookings b
LEFT JOIN cars c ON c.id = b.car_id
WHERE b.id = $1
`

func (q *Queries) GetBookingWithCar(ctx context.Context, db DBTX, id uuid.UUID) (BookingWithCarRow, error) {
	row := db.QueryRow(ctx, getBookingWithCar, id)
	var i BookingWithCarRow
	err := scanBooking(row, &i.Booking, &i.CarBrand, &i.CarName, &i.CarImageURL)
	return i, err
}

const getBookingForUpdate = `-- name: GetBookingForUpdate :one
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.id = $1
FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	row := db.QueryRow(ctx, getBookingForUpdate, id)
	var i Booking
	err := scanBooking(row, &i)
	return i, err
}

const listStalePendingBookings = `-- name: ListStalePendingBookings :many
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.status = 'pending_payment'
  AND b.created_at < $1
ORDER BY b.created_at ASC
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ListStalePendingBookings(ctx context.Context, db DBTX, cutoff pgtype.Timestamptz) ([]Booking, error) {
	rows, err := db.Query(ctx, listStalePendingBookings, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Booking
	for rows.Next() {
		var i Booking
		if err := scanBooking(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBookingStatus = `-- name: UpdateBookingStatus :execrows
UPDATE bookings
SET status = $2, updated_at = $3
WHERE id = $1
`

type UpdateBookingStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
