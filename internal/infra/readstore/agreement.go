package readstore

//go:generate mockgen -source=agreement.go -destination=../../../tests/mock/readstore/agreement.go -package=readstoremock

import (
	"context"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AgreementReadQueries interface {
	ListAgreementsByBookingIDs(ctx context.Context, db query.DBTX, bookingIDs []string) ([]query.Agreement, error)
	GetAgreement(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Agreement, error)
	ListBlockingAgreements(ctx context.Context, db query.DBTX, statuses []string) ([]query.Agreement, error)
}

type AgreementReadStore struct {
	queries AgreementReadQueries
	db      query.DBTX
}

func NewAgreementReadStore(queries AgreementReadQueries, db query.DBTX) *AgreementReadStore {
	return &AgreementReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByBookingIDs returns agreements oldest first so the first one per
// booking is the one that counts.
func (r *AgreementReadStore) ListByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) ([]agreement.Agreement, error) {
	if len(bookingIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListAgreementsByBookingIDs(ctx, r.db, pgconv.UUIDsToStrings(bookingIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agreements by booking ids", err)
	}
	return toAgreements(rows), nil
}

func (r *AgreementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*agreement.Agreement, error) {
	row, err := r.queries.GetAgreement(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agreement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get agreement by id", err)
	}
	a := toAgreement(row)
	return &a, nil
}

// ListBlocking fetches agreements in any of statuses that name a vehicle.
// Callers match registrations themselves.
func (r *AgreementReadStore) ListBlocking(ctx context.Context, statuses []string) ([]agreement.Agreement, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListBlockingAgreements(ctx, r.db, statuses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking agreements", err)
	}
	return toAgreements(rows), nil
}

func toAgreements(rows []query.Agreement) []agreement.Agreement {
	out := make([]agreement.Agreement, len(rows))
	for i, row := range rows {
		out[i] = toAgreement(row)
	}
	return out
}

func toAgreement(row query.Agreement) agreement.Agreement {
	return agreement.Agreement{
		ID:                    row.ID,
		BookingID:             pgconv.UUIDPtrFromPgtype(row.BookingID),
		CustomerSignatureData: pgconv.TextOrEmpty(row.CustomerSignatureData),
		UnsignedAgreementURL:  pgconv.TextOrEmpty(row.UnsignedAgreementURL),
		SignedAgreementURL:    pgconv.TextOrEmpty(row.SignedAgreementURL),
		Status:                pgconv.TextOrEmpty(row.Status),
		VehicleRegistration:   pgconv.TextOrEmpty(row.VehicleRegistration),
		StartDate:             pgconv.TimeFromPgtype(row.StartDate),
		EndDate:               pgconv.TimeFromPgtype(row.EndDate),
	}
}
