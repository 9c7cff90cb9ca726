//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental-ops/internal/domain/booking"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/infra/repository"
	"car-rental-ops/tests/common/builder"
	repositorymock "car-rental-ops/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnection = errors.New("database connection error")

// =============================================================================
// GetForUpdate Tests
// =============================================================================

func TestBookingRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking locked",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				row := builder.NewBookingBuilder().WithID(bookingID).WithStatus(booking.StatusPendingPayment).BuildRow()
				mock.EXPECT().GetBookingForUpdate(ctx, tx, bookingID).Return(row, nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				mock.EXPECT().GetBookingForUpdate(ctx, tx, bookingID).Return(query.Booking{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: unknown stored status",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				row := builder.NewBookingBuilder().WithID(bookingID).BuildRow()
				row.Status = "on_hold"
				mock.EXPECT().GetBookingForUpdate(ctx, tx, bookingID).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				mock.EXPECT().GetBookingForUpdate(ctx, tx, bookingID).Return(query.Booking{}, errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			got, actualError := repo.GetForUpdate(ctx, mockDB, bookingID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, bookingID, got.ID)
				assert.Equal(t, booking.StatusPendingPayment, got.Status)
			}
		})
	}
}

// =============================================================================
// ListStalePending Tests
// =============================================================================

func TestBookingRepository_ListStalePending(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries)

	rows := []query.Booking{
		builder.NewBookingBuilder().WithStatus(booking.StatusPendingPayment).BuildRow(),
		builder.NewBookingBuilder().WithStatus(booking.StatusPendingPayment).BuildRow(),
	}
	mockQueries.EXPECT().
		ListStalePendingBookings(ctx, mockDB, pgtype.Timestamptz{Time: cutoff, Valid: true}).
		Return(rows, nil)

	got, err := repo.ListStalePending(ctx, mockDB, cutoff)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0].ID, got[0].ID)
	assert.Equal(t, rows[1].ID, got[1].ID)
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		rows          int64
		err           error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", rows: 1},
		{name: "error: no rows updated", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{
			name:          "error: check constraint",
			err:           &pgconn.PgError{Code: "23514", Message: "violates check constraint"},
			expectedError: true,
			expectKind:    infra.KindCheckViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).Build()
			b.UpdatedAt = now

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, query.UpdateBookingStatusParams{
				ID:        b.ID,
				Status:    "confirmed",
				UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
			}).Return(tc.rows, tc.err)

			err := repo.UpdateStatus(ctx, mockDB, b)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
