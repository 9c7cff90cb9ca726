//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCar(t *testing.T, db DBLike, brand, name string) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO cars (id, brand, name, image_url) VALUES ($1, $2, $3, $4)",
		carID, brand, name, "https://cdn.example.com/"+strings.ToLower(name)+".png")
	require.NoError(t, err)
	return carID
}

func CreateTestFleetVehicle(t *testing.T, db DBLike, carID uuid.UUID, registration, status string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO fleet_vehicles (id, registration_number, car_id, status) VALUES ($1, $2, $3, $4)",
		vehicleID, registration, carID, status)
	require.NoError(t, err)
	return vehicleID
}

func CreateTestBooking(t *testing.T, db DBLike, carID uuid.UUID, pickup, dropoff time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO bookings (id, car_id, pickup_date, dropoff_date, status, customer_name, customer_email, total_amount)
		 VALUES ($1, $2, $3, $4, $5, 'Test Customer', 'customer@example.com', 199.00)`,
		bookingID, carID, pickup, dropoff, status)
	require.NoError(t, err)
	return bookingID
}

type AgreementFixture struct {
	BookingID             *uuid.UUID
	CustomerSignatureData string
	UnsignedAgreementURL  string
	SignedAgreementURL    string
	Status                string
	VehicleRegistration   string
	StartDate             time.Time
	EndDate               time.Time
}

func CreateTestAgreement(t *testing.T, db DBLike, f AgreementFixture) uuid.UUID {
	t.Helper()

	agreementID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO agreements (id, booking_id, customer_signature_data, unsigned_agreement_url,
		                         signed_agreement_url, status, vehicle_registration, start_date, end_date)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''), $8, $9)`,
		agreementID, f.BookingID, f.CustomerSignatureData, f.UnsignedAgreementURL,
		f.SignedAgreementURL, f.Status, f.VehicleRegistration, f.StartDate, f.EndDate)
	require.NoError(t, err)
	return agreementID
}

func CountNotifications(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notifications WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// children first; CASCADE covers anything added later with a foreign key
var resetTables = []string{"notifications", "agreements", "bookings", "fleet_vehicles", "cars"}

// ResetDB empties every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(resetTables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("failed to reset test database: %w", err)
	}
	return nil
}
