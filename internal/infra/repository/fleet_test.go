//go:build unit

package repository_test

import (
	"context"
	"testing"

	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/infra/repository"
	repositorymock "car-rental-ops/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFleetRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	vehicleID := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "vehicle missing", rows: 0, expectKind: infra.KindNotFound},
		{name: "database failure", err: errDBConnection, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockFleetWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewFleetRepository(mockQueries)

			mockQueries.EXPECT().UpdateFleetVehicleStatus(ctx, mockDB, query.UpdateFleetVehicleStatusParams{
				ID:     vehicleID,
				Status: "inactive",
			}).Return(tc.rows, tc.err)

			err := repo.UpdateStatus(ctx, mockDB, vehicleID, fleet.VehicleStatusInactive)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
