package commands

import (
	"context"

	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/pkg/errs"
	"car-rental-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound      = errs.ErrVehicleNotFound
	ErrUnknownVehicleStatus = errs.ErrUnknownVehicleStatus
)

type FleetCommands interface {
	SetVehicleStatus(ctx context.Context, vehicleID uuid.UUID, status string) error
}

type fleetUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewFleetUseCase(uow shared.UnitOfWork) FleetCommands {
	return &fleetUseCaseImpl{uow: uow}
}

func (uc *fleetUseCaseImpl) SetVehicleStatus(ctx context.Context, vehicleID uuid.UUID, status string) error {
	st, err := fleet.ParseVehicleStatus(status)
	if err != nil {
		return ErrUnknownVehicleStatus
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Fleet().UpdateStatus(ctx, tx.DB(), vehicleID, st); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return derr
		}
		return nil
	})
}
