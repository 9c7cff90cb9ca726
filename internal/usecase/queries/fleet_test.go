//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/usecase/queries"
	"car-rental-ops/tests/common/builder"
	queriesmock "car-rental-ops/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var blockingStatuses = []string{"active", "signed", "pending", "on_rent", "confirmed"}

func at(day, hour int) time.Time {
	return time.Date(2025, time.June, day, hour, 0, 0, 0, time.UTC)
}

func idsOf(views []*queries.FleetVehicleView) []uuid.UUID {
	out := make([]uuid.UUID, len(views))
	for i, v := range views {
		out[i] = v.Vehicle.ID
	}
	return out
}

type fleetMocks struct {
	fleet      *queriesmock.MockFleetReadStore
	agreements *queriesmock.MockAgreementReadStore
	uc         queries.FleetQueries
}

func newFleetMocks(t *testing.T) fleetMocks {
	ctrl := gomock.NewController(t)
	m := fleetMocks{
		fleet:      queriesmock.NewMockFleetReadStore(ctrl),
		agreements: queriesmock.NewMockAgreementReadStore(ctrl),
	}
	m.uc = queries.NewFleetQueries(m.fleet, m.agreements)
	return m
}

func TestFleetQueries_ListAvailable(t *testing.T) {
	ctx := context.Background()
	carA := builder.NewVehicleBuilder().WithRegistration("AB12 CDE").BuildView()
	carB := builder.NewVehicleBuilder().WithRegistration("xy99zzz").BuildView()
	carADup := builder.NewVehicleBuilder().WithRegistration("ab12cde").BuildView()
	interval := &fleet.Interval{Start: at(10, 10), End: at(15, 10)}

	t.Run("blocked vehicle is excluded by normalized registration", func(t *testing.T) {
		m := newFleetMocks(t)

		m.fleet.EXPECT().ListActive(ctx, nil).
			Return([]*queries.FleetVehicleView{carA, carB, carADup}, nil)
		m.agreements.EXPECT().ListBlocking(ctx, blockingStatuses).
			Return([]agreement.Agreement{
				builder.NewAgreementBuilder().WithRegistration("ab12 cde").WithPeriod(at(15, 10), at(20, 10)).Build(),
			}, nil)

		got, err := m.uc.ListAvailable(ctx, queries.AvailabilityParams{
			Interval:         interval,
			BlockingStatuses: blockingStatuses,
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{carB.Vehicle.ID}, idsOf(got))
		assert.Equal(t, carB.Car, got[0].Car)
	})

	t.Run("unicode spacing in an agreement plate still blocks", func(t *testing.T) {
		m := newFleetMocks(t)

		m.fleet.EXPECT().ListActive(ctx, nil).
			Return([]*queries.FleetVehicleView{carA, carB}, nil)
		m.agreements.EXPECT().ListBlocking(ctx, blockingStatuses).
			Return([]agreement.Agreement{
				builder.NewAgreementBuilder().WithRegistration("ab12\u00a0cde").WithPeriod(at(11, 10), at(12, 10)).Build(),
				builder.NewAgreementBuilder().WithRegistration("XY99\u2003ZZZ").WithPeriod(at(9, 10), at(10, 10)).Build(),
			}, nil)

		got, err := m.uc.ListAvailable(ctx, queries.AvailabilityParams{
			Interval:         interval,
			BlockingStatuses: blockingStatuses,
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no interval skips agreements and dedupes", func(t *testing.T) {
		m := newFleetMocks(t)
		carID := carA.Vehicle.CarID

		m.fleet.EXPECT().ListActive(ctx, &carID).
			Return([]*queries.FleetVehicleView{carA, carB, carADup}, nil)

		got, err := m.uc.ListAvailable(ctx, queries.AvailabilityParams{CarID: &carID})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{carA.Vehicle.ID, carB.Vehicle.ID}, idsOf(got))
	})

	t.Run("no candidates skips agreements", func(t *testing.T) {
		m := newFleetMocks(t)

		m.fleet.EXPECT().ListActive(ctx, nil).Return(nil, nil)

		got, err := m.uc.ListAvailable(ctx, queries.AvailabilityParams{
			Interval:         interval,
			BlockingStatuses: blockingStatuses,
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("inverted interval is rejected", func(t *testing.T) {
		m := newFleetMocks(t)

		_, err := m.uc.ListAvailable(ctx, queries.AvailabilityParams{
			Interval:         &fleet.Interval{Start: at(15, 10), End: at(10, 10)},
			BlockingStatuses: blockingStatuses,
		})
		assert.ErrorIs(t, err, queries.ErrInvalidInterval)
	})

	t.Run("interval without blocking statuses is rejected", func(t *testing.T) {
		m := newFleetMocks(t)

		_, err := m.uc.ListAvailable(ctx, queries.AvailabilityParams{Interval: interval})
		assert.ErrorIs(t, err, queries.ErrBlockingStatusesEmpty)
	})
}

func TestFleetQueries_ListFleetStatus(t *testing.T) {
	ctx := context.Background()
	rented := builder.NewVehicleBuilder().WithRegistration("AB12 CDE").BuildView()
	idle := builder.NewVehicleBuilder().WithRegistration("XY99ZZZ").BuildView()
	inactive := builder.NewVehicleBuilder().WithRegistration("LM55 NOP").WithStatus(fleet.VehicleStatusInactive).BuildView()
	now := at(12, 9)

	t.Run("vehicles covered at the instant are on rent", func(t *testing.T) {
		m := newFleetMocks(t)

		m.fleet.EXPECT().ListAll(ctx).
			Return([]*queries.FleetVehicleView{rented, idle, inactive}, nil)
		m.agreements.EXPECT().ListBlocking(ctx, blockingStatuses).
			Return([]agreement.Agreement{
				builder.NewAgreementBuilder().WithRegistration("ab12cde").WithPeriod(at(10, 9), now).Build(),
				builder.NewAgreementBuilder().WithRegistration("XY99ZZZ").WithPeriod(at(13, 9), at(14, 9)).Build(),
			}, nil)

		got, err := m.uc.ListFleetStatus(ctx, now, blockingStatuses)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, got[0].OnRent)
		assert.False(t, got[1].OnRent)
		assert.False(t, got[2].OnRent)
		assert.Equal(t, fleet.VehicleStatusInactive, got[2].Vehicle.Status)
	})

	t.Run("empty fleet", func(t *testing.T) {
		m := newFleetMocks(t)

		m.fleet.EXPECT().ListAll(ctx).Return(nil, nil)

		got, err := m.uc.ListFleetStatus(ctx, now, blockingStatuses)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("blocking statuses required", func(t *testing.T) {
		m := newFleetMocks(t)

		_, err := m.uc.ListFleetStatus(ctx, now, nil)
		assert.ErrorIs(t, err, queries.ErrBlockingStatusesEmpty)
	})
}
