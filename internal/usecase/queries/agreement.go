package queries

import (
	"context"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAgreementNotFound = errs.ErrAgreementNotFound

type AgreementQueries interface {
	GetSignatureStatus(ctx context.Context, agreementID uuid.UUID) (*AgreementSignatureView, error)
}

type agreementQueriesImpl struct {
	agreements AgreementReadStore
}

func NewAgreementQueries(agreements AgreementReadStore) AgreementQueries {
	return &agreementQueriesImpl{agreements: agreements}
}

func (q *agreementQueriesImpl) GetSignatureStatus(ctx context.Context, agreementID uuid.UUID) (*AgreementSignatureView, error) {
	a, err := q.agreements.FindByID(ctx, agreementID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgreementNotFound
		}
		return nil, err
	}
	return &AgreementSignatureView{
		AgreementID: a.ID,
		BookingID:   a.BookingID,
		Status:      a.Status,
		Signatures:  agreement.ResolveSignatures(*a),
	}, nil
}
