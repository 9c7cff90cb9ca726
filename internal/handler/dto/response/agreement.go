package response

import (
	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type SignatureResponse struct {
	HasCustomerSignature bool   `json:"hasCustomerSignature"`
	HasAdminSignature    bool   `json:"hasAdminSignature"`
	IsFullySigned        bool   `json:"isFullySigned"`
	AdminSignal          string `json:"adminSignal"`
}

type AgreementSignatureResponse struct {
	AgreementID uuid.UUID         `json:"agreementId"`
	BookingID   *uuid.UUID        `json:"bookingId,omitempty"`
	Status      string            `json:"status"`
	Signatures  SignatureResponse `json:"signatures"`
}

func FromSignatureStatus(s agreement.SignatureStatus) SignatureResponse {
	return SignatureResponse{
		HasCustomerSignature: s.HasCustomerSignature,
		HasAdminSignature:    s.HasAdminSignature,
		IsFullySigned:        s.IsFullySigned,
		AdminSignal:          string(s.AdminSignal),
	}
}

func FromAgreementSignatureView(v *queries.AgreementSignatureView) *AgreementSignatureResponse {
	return &AgreementSignatureResponse{
		AgreementID: v.AgreementID,
		BookingID:   v.BookingID,
		Status:      v.Status,
		Signatures:  FromSignatureStatus(v.Signatures),
	}
}
