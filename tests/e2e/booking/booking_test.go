//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"car-rental-ops/internal/handler/dto/request"
	"car-rental-ops/internal/handler/dto/response"
	"car-rental-ops/internal/usecase/shared"
	"car-rental-ops/tests/common/authtest"
	"car-rental-ops/tests/common/dbtest"
	"car-rental-ops/tests/common/httptest"
	"car-rental-ops/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signedBookingsURL = "/api/admin/bookings/signed"
	bookingURL        = "/api/admin/bookings/%s"
	bookingStatusURL  = "/api/admin/bookings/%s/status"
	signaturesURL     = "/api/admin/agreements/%s/signatures"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func ptr[T any](v T) *T { return &v }

// =============================================================================
// TestListSigned - fully signed bookings
// =============================================================================

func (s *BookingSuite) TestListSigned() {
	s.Run("Normal case: only bookings whose first agreement is fully signed are listed", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla")
		pickup := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		dropoff := pickup.Add(72 * time.Hour)

		// signed through the embedded admin signature
		b1 := dbtest.CreateTestBooking(t, s.DB, carID, pickup, dropoff, "confirmed")
		dbtest.CreateTestAgreement(t, s.DB, dbtest.AgreementFixture{
			BookingID:             ptr(b1),
			CustomerSignatureData: `{"customer":"data:image/png;base64,AAA","admin_signature":"data:image/png;base64,BBB"}`,
			Status:                "active",
			VehicleRegistration:   "AB12 CDE",
			StartDate:             pickup,
			EndDate:               dropoff,
		})

		// customer only
		b2 := dbtest.CreateTestBooking(t, s.DB, carID, pickup, dropoff, "confirmed")
		dbtest.CreateTestAgreement(t, s.DB, dbtest.AgreementFixture{
			BookingID:             ptr(b2),
			CustomerSignatureData: "data:image/png;base64,AAA",
			Status:                "signed",
			StartDate:             pickup,
			EndDate:               dropoff,
		})

		// fully signed but not in a listed status
		b3 := dbtest.CreateTestBooking(t, s.DB, carID, pickup, dropoff, "pending_payment")
		dbtest.CreateTestAgreement(t, s.DB, dbtest.AgreementFixture{
			BookingID:             ptr(b3),
			CustomerSignatureData: "data:image/png;base64,AAA",
			SignedAgreementURL:    "https://files.example.com/agreements/b3.pdf",
			StartDate:             pickup,
			EndDate:               dropoff,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, signedBookingsURL, nil, token)

		var got []response.SignedBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		assert.Equal(t, b1, got[0].ID)
		assert.Equal(t, "AB12 CDE", got[0].VehicleRegistration)
		assert.Equal(t, "Toyota", got[0].Car.Brand)
		assert.Equal(t, "199.00", got[0].TotalAmount)
		assert.True(t, got[0].Signatures.IsFullySigned)
		assert.Equal(t, "embedded_json", got[0].Signatures.AdminSignal)
	})

	s.Run("Error case: request without a token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, signedBookingsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("Error case: non-admin role is forbidden", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), "authenticated")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, signedBookingsURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

// =============================================================================
// TestGet - single booking
// =============================================================================

func (s *BookingSuite) TestGet() {
	s.Run("Normal case: booking is returned with its car", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		carID := dbtest.CreateTestCar(t, s.DB, "Ford", "Focus")
		pickup := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
		id := dbtest.CreateTestBooking(t, s.DB, carID, pickup, pickup.Add(24*time.Hour), "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, token)

		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, carID, got.Car.ID)
		assert.Equal(t, "confirmed", got.Status)
		assert.True(t, pickup.Equal(got.PickupDate))
	})

	s.Run("Error case: unknown booking returns 404", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestUpdateStatus - status commands
// =============================================================================

func (s *BookingSuite) TestUpdateStatus() {
	s.Run("Normal case: transition is persisted and a notification is queued", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Yaris")
		pickup := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		id := dbtest.CreateTestBooking(t, s.DB, carID, pickup, pickup.Add(48*time.Hour), "confirmed")

		body := request.UpdateBookingStatusRequest{Status: "active"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingStatusURL, id), body, token)

		var got response.BookingStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, id, got.BookingID)
		assert.Equal(t, "confirmed", got.PreviousStatus)
		assert.Equal(t, "active", got.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, token)
		var stored response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stored)
		assert.Equal(t, "active", stored.Status)

		assert.Equal(t, 1, dbtest.CountNotifications(t, s.DB, shared.NotificationKindBookingStatusChanged))
	})

	s.Run("Error case: illegal transition returns 409 and writes nothing", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Yaris")
		pickup := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		id := dbtest.CreateTestBooking(t, s.DB, carID, pickup, pickup.Add(48*time.Hour), "completed")

		body := request.UpdateBookingStatusRequest{Status: "active"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingStatusURL, id), body, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		assert.Equal(t, 0, dbtest.CountNotifications(t, s.DB, shared.NotificationKindBookingStatusChanged))
	})

	s.Run("Error case: unknown status value returns 400", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(bookingStatusURL, uuid.New()), map[string]string{"status": "archived"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestSignatures - agreement signature resolution
// =============================================================================

func (s *BookingSuite) TestSignatures() {
	s.Run("Normal case: unsigned document counts as the admin signature", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		id := dbtest.CreateTestAgreement(t, s.DB, dbtest.AgreementFixture{
			CustomerSignatureData: "data:image/png;base64,AAA",
			UnsignedAgreementURL:  "https://files.example.com/agreements/unsigned.pdf",
			Status:                "pending",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(signaturesURL, id), nil, token)

		var got response.AgreementSignatureResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, id, got.AgreementID)
		assert.Nil(t, got.BookingID)
		assert.Equal(t, response.SignatureResponse{
			HasCustomerSignature: true,
			HasAdminSignature:    true,
			IsFullySigned:        true,
			AdminSignal:          "unsigned_document",
		}, got.Signatures)
	})
}
