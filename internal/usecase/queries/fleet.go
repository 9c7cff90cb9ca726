package queries

import (
	"context"
	"time"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval       = errs.ErrInvalidInterval
	ErrBlockingStatusesEmpty = errs.ErrBlockingStatusesEmpty
)

type FleetQueries interface {
	ListAvailable(ctx context.Context, params AvailabilityParams) ([]*FleetVehicleView, error)
	ListFleetStatus(ctx context.Context, at time.Time, blockingStatuses []string) ([]*FleetStatusView, error)
}

type fleetQueriesImpl struct {
	fleet      FleetReadStore
	agreements AgreementReadStore
}

func NewFleetQueries(fleetStore FleetReadStore, agreements AgreementReadStore) FleetQueries {
	return &fleetQueriesImpl{
		fleet:      fleetStore,
		agreements: agreements,
	}
}

func (q *fleetQueriesImpl) ListAvailable(ctx context.Context, params AvailabilityParams) ([]*FleetVehicleView, error) {
	if params.Interval != nil && params.Interval.End.Before(params.Interval.Start) {
		return nil, ErrInvalidInterval
	}
	if params.Interval != nil && len(params.BlockingStatuses) == 0 {
		return nil, ErrBlockingStatusesEmpty
	}

	candidates, err := q.fleet.ListActive(ctx, params.CarID)
	if err != nil {
		return nil, err
	}

	var blocking []agreement.Agreement
	if params.Interval != nil && len(candidates) > 0 {
		blocking, err = q.agreements.ListBlocking(ctx, params.BlockingStatuses)
		if err != nil {
			return nil, err
		}
	}

	available := fleet.FilterAvailable(vehiclesOf(candidates), blocking, params.Interval)
	return selectViews(candidates, available), nil
}

// ListFleetStatus reports every vehicle, flagging those a blocking agreement
// covers at the given instant.
func (q *fleetQueriesImpl) ListFleetStatus(ctx context.Context, at time.Time, blockingStatuses []string) ([]*FleetStatusView, error) {
	if len(blockingStatuses) == 0 {
		return nil, ErrBlockingStatusesEmpty
	}

	all, err := q.fleet.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return []*FleetStatusView{}, nil
	}

	blocking, err := q.agreements.ListBlocking(ctx, blockingStatuses)
	if err != nil {
		return nil, err
	}
	onRent := fleet.BlockedRegistrations(blocking, fleet.Instant(at))

	out := make([]*FleetStatusView, 0, len(all))
	for _, v := range all {
		_, rented := onRent[fleet.NormalizeRegistration(v.Vehicle.RegistrationNumber)]
		out = append(out, &FleetStatusView{
			Vehicle: v.Vehicle,
			Car:     v.Car,
			OnRent:  rented,
		})
	}
	return out, nil
}
