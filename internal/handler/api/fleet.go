package api

import (
	"net/http"

	"car-rental-ops/internal/domain/fleet"
	reqdto "car-rental-ops/internal/handler/dto/request"
	resdto "car-rental-ops/internal/handler/dto/response"
	"car-rental-ops/internal/handler/httperr"
	"car-rental-ops/internal/pkg/clock"
	"car-rental-ops/internal/pkg/errs"
	"car-rental-ops/internal/usecase/commands"
	"car-rental-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FleetHandler struct {
	q                queries.FleetQueries
	cmds             commands.FleetCommands
	blockingStatuses []string
	clock            clock.Clock
}

func NewFleetHandler(q queries.FleetQueries, cmds commands.FleetCommands, blockingStatuses []string, clk clock.Clock) *FleetHandler {
	return &FleetHandler{q: q, cmds: cmds, blockingStatuses: blockingStatuses, clock: clk}
}

// @Summary Fleet availability
// @Description Active vehicles not held by a blocking agreement overlapping the requested window
// @Tags fleet
// @Produce json
// @Param start query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param car_id query string false "Car model ID"
// @Success 200 {array} resdto.FleetVehicleResponse
// @Failure 400 {object} httperr.Response
// @Router /fleet/availability [get]
func (h *FleetHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	interval, err := query.Interval()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.q.ListAvailable(c.Request.Context(), queries.AvailabilityParams{
		CarID:            query.CarUUID(),
		Interval:         interval,
		BlockingStatuses: h.blockingStatuses,
	})
	if err != nil {
		if errs.Is(err, queries.ErrInvalidInterval) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End must not be before start", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFleetVehicleViews(views))
}

// @Summary Fleet status board
// @Description Every fleet vehicle with whether a blocking agreement covers the given instant
// @Tags admin-fleet
// @Produce json
// @Security BearerAuth
// @Param at query string false "Instant to check (RFC3339 or YYYY-MM-DD), defaults to now"
// @Param registration query string false "Only the vehicle with this registration"
// @Success 200 {array} resdto.FleetStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/fleet/status [get]
func (h *FleetHandler) Status(c *gin.Context) {
	var query reqdto.FleetStatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	at, err := query.AtOrNow(h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.q.ListFleetStatus(c.Request.Context(), at, h.blockingStatuses)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load fleet status", nil)
		return
	}
	if query.Registration != "" {
		views = filterByRegistration(views, query.Registration)
	}
	c.JSON(http.StatusOK, resdto.FromFleetStatusViews(views))
}

// @Summary Set vehicle status
// @Description Activate or deactivate a fleet vehicle
// @Tags admin-fleet
// @Accept json
// @Security BearerAuth
// @Param id path string true "Fleet vehicle ID"
// @Param request body reqdto.UpdateVehicleStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/fleet/{id}/status [patch]
func (h *FleetHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}
	var req reqdto.UpdateVehicleStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.SetVehicleStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errs.Is(err, commands.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errs.Is(err, commands.ErrUnknownVehicleStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown vehicle status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func filterByRegistration(views []*queries.FleetStatusView, registration string) []*queries.FleetStatusView {
	key := fleet.NormalizeRegistration(registration)
	out := make([]*queries.FleetStatusView, 0, 1)
	for _, v := range views {
		if fleet.NormalizeRegistration(v.Vehicle.RegistrationNumber) == key {
			out = append(out, v)
		}
	}
	return out
}
