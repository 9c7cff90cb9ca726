//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/infra/readstore"
	"car-rental-ops/tests/common/builder"
	readstoremock "car-rental-ops/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFleetReadStore_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("without car filter passes a null uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFleetReadQueries(ctrl)
		store := readstore.NewFleetReadStore(mockQueries, &mockDBTX{})

		row := builder.NewVehicleBuilder().BuildRow()
		mockQueries.EXPECT().ListActiveFleetVehicles(ctx, gomock.Any(), pgtype.UUID{}).
			Return([]query.FleetVehicleRow{row}, nil)

		got, err := store.ListActive(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, row.ID, got[0].Vehicle.ID)
		assert.Equal(t, row.RegistrationNumber, got[0].Vehicle.RegistrationNumber)
		assert.Equal(t, fleet.VehicleStatusActive, got[0].Vehicle.Status)
		assert.Equal(t, row.CarID, got[0].Car.ID)
	})

	t.Run("car filter forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFleetReadQueries(ctrl)
		store := readstore.NewFleetReadStore(mockQueries, &mockDBTX{})

		carID := uuid.New()
		mockQueries.EXPECT().ListActiveFleetVehicles(ctx, gomock.Any(), pgtype.UUID{Bytes: carID, Valid: true}).
			Return(nil, nil)

		got, err := store.ListActive(ctx, &carID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFleetReadQueries(ctrl)
		store := readstore.NewFleetReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListActiveFleetVehicles(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListActive(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestFleetReadStore_ListAll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockFleetReadQueries(ctrl)
	store := readstore.NewFleetReadStore(mockQueries, &mockDBTX{})

	inactive := builder.NewVehicleBuilder().WithStatus(fleet.VehicleStatusInactive).BuildRow()
	mockQueries.EXPECT().ListFleetVehicles(ctx, gomock.Any()).Return([]query.FleetVehicleRow{inactive}, nil)

	got, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fleet.VehicleStatusInactive, got[0].Vehicle.Status)
}
