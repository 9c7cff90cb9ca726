//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/handler/api"
	resdto "car-rental-ops/internal/handler/dto/response"
	"car-rental-ops/internal/usecase/queries"
	"car-rental-ops/tests/common/httptest"
	queriesmock "car-rental-ops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAgreementHandler_Signatures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	agreementID := uuid.New()
	bookingID := uuid.New()

	testCases := []struct {
		name       string
		path       string
		setup      func(*queriesmock.MockAgreementQueries)
		expectCode int
	}{
		{
			name: "success",
			path: "/admin/agreements/" + agreementID.String() + "/signatures",
			setup: func(m *queriesmock.MockAgreementQueries) {
				m.EXPECT().GetSignatureStatus(gomock.Any(), agreementID).Return(&queries.AgreementSignatureView{
					AgreementID: agreementID,
					BookingID:   &bookingID,
					Status:      "signed",
					Signatures: agreement.SignatureStatus{
						HasCustomerSignature: true,
						HasAdminSignature:    true,
						IsFullySigned:        true,
						AdminSignal:          agreement.AdminSignalSignedPDF,
					},
				}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:       "invalid id",
			path:       "/admin/agreements/abc/signatures",
			setup:      func(*queriesmock.MockAgreementQueries) {},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/admin/agreements/" + agreementID.String() + "/signatures",
			setup: func(m *queriesmock.MockAgreementQueries) {
				m.EXPECT().GetSignatureStatus(gomock.Any(), agreementID).Return(nil, queries.ErrAgreementNotFound)
			},
			expectCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := queriesmock.NewMockAgreementQueries(ctrl)
			tc.setup(mockQueries)

			router := gin.New()
			router.GET("/admin/agreements/:id/signatures", api.NewAgreementHandler(mockQueries).Signatures)

			rec := httptest.PerformRequest(t, router, http.MethodGet, tc.path, nil, "")
			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, "")
				return
			}

			var body resdto.AgreementSignatureResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, agreementID, body.AgreementID)
			assert.Equal(t, &bookingID, body.BookingID)
			assert.Equal(t, "signed_pdf", body.Signatures.AdminSignal)
			assert.True(t, body.Signatures.IsFullySigned)
		})
	}
}
