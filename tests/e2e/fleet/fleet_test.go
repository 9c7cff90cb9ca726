//go:build e2e

package fleet_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"car-rental-ops/internal/handler/dto/request"
	"car-rental-ops/internal/handler/dto/response"
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
	availabilityURL  = "/api/fleet/availability"
	fleetStatusURL   = "/api/admin/fleet/status"
	vehicleStatusURL = "/api/admin/fleet/%s/status"
)

type FleetSuite struct {
	e2e.SharedSuite
}

func TestFleetSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FleetSuite))
}

func registrations(vs []response.FleetVehicleResponse) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.RegistrationNumber)
	}
	return out
}

func availabilityQuery(start, end string) string {
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	return availabilityURL + "?" + q.Encode()
}

// =============================================================================
// TestAvailability - overlap filter
// =============================================================================

func (s *FleetSuite) TestAvailability() {
	setup := func() {
		t := s.T()
		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Corolla")
		dbtest.CreateTestFleetVehicle(t, s.DB, carID, "AB12 CDE", "active")
		dbtest.CreateTestFleetVehicle(t, s.DB, carID, "XY99 ZZZ", "active")
		dbtest.CreateTestFleetVehicle(t, s.DB, carID, "OLD 001", "inactive")

		// registration stored in a different format than the vehicle's
		dbtest.CreateTestAgreement(t, s.DB, dbtest.AgreementFixture{
			Status:              "active",
			VehicleRegistration: "ab12cde",
			StartDate:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:             time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		})
		// non-blocking status
		dbtest.CreateTestAgreement(t, s.DB, dbtest.AgreementFixture{
			Status:              "cancelled",
			VehicleRegistration: "XY99 ZZZ",
			StartDate:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:             time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		})
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "Normal case: overlapping blocking agreement hides the vehicle",
			start: "2025-06-12",
			end:   "2025-06-20",
			want:  []string{"XY99 ZZZ"},
		},
		{
			name:  "Boundary: window ending exactly at agreement start still overlaps",
			start: "2025-06-01T00:00:00Z",
			end:   "2025-06-10T00:00:00Z",
			want:  []string{"XY99 ZZZ"},
		},
		{
			name:  "Boundary: window starting exactly at agreement end still overlaps",
			start: "2025-06-15T00:00:00Z",
			end:   "2025-06-16T00:00:00Z",
			want:  []string{"XY99 ZZZ"},
		},
		{
			name:  "Normal case: window after the agreement shows every active vehicle",
			start: "2025-06-15T00:00:01Z",
			end:   "2025-06-16T00:00:00Z",
			want:  []string{"AB12 CDE", "XY99 ZZZ"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			setup()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityQuery(tt.start, tt.end), nil, "")

			var got []response.FleetVehicleResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			assert.ElementsMatch(t, tt.want, registrations(got))
		})
	}

	s.Run("Normal case: without a window every active vehicle is listed", func() {
		t := s.T()
		setup()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")

		var got []response.FleetVehicleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.ElementsMatch(t, []string{"AB12 CDE", "XY99 ZZZ"}, registrations(got))
	})

	s.Run("Error case: end before start returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityQuery("2025-06-20", "2025-06-10"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: only one bound returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?start=2025-06-20", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestStatus - admin status board
// =============================================================================

func (s *FleetSuite) TestStatus() {
	s.Run("Normal case: on-rent flag follows the blocking agreement", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		carID := dbtest.CreateTestCar(t, s.DB, "Ford", "Focus")
		dbtest.CreateTestFleetVehicle(t, s.DB, carID, "AB12 CDE", "active")
		dbtest.CreateTestFleetVehicle(t, s.DB, carID, "XY99 ZZZ", "active")
		dbtest.CreateTestAgreement(t, s.DB, dbtest.AgreementFixture{
			Status:              "on_rent",
			VehicleRegistration: "AB12CDE",
			StartDate:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:             time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fleetStatusURL+"?at=2025-06-12T12:00:00Z", nil, token)

		var got []response.FleetStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 2)
		onRent := map[string]bool{}
		for _, v := range got {
			onRent[v.RegistrationNumber] = v.OnRent
		}
		assert.Equal(t, map[string]bool{"AB12 CDE": true, "XY99 ZZZ": false}, onRent)
	})

	s.Run("Normal case: registration filter ignores spacing and case", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		carID := dbtest.CreateTestCar(t, s.DB, "Ford", "Focus")
		dbtest.CreateTestFleetVehicle(t, s.DB, carID, "AB12 CDE", "active")
		dbtest.CreateTestFleetVehicle(t, s.DB, carID, "XY99 ZZZ", "active")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fleetStatusURL+"?registration=ab12cde", nil, token)

		var got []response.FleetStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "AB12 CDE", got[0].RegistrationNumber)
	})
}

// =============================================================================
// TestSetStatus - vehicle activation
// =============================================================================

func (s *FleetSuite) TestSetStatus() {
	s.Run("Normal case: deactivated vehicle drops out of availability", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		carID := dbtest.CreateTestCar(t, s.DB, "Toyota", "Yaris")
		vehicleID := dbtest.CreateTestFleetVehicle(t, s.DB, carID, "AB12 CDE", "active")

		body := request.UpdateVehicleStatusRequest{Status: "inactive"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(vehicleStatusURL, vehicleID), body, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")
		var got []response.FleetVehicleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Empty(t, got)
	})

	s.Run("Error case: unknown vehicle returns 404", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)

		body := request.UpdateVehicleStatusRequest{Status: "inactive"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(vehicleStatusURL, uuid.New()), body, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Vehicle not found")
	})
}
