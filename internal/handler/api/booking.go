package api

import (
	"net/http"

	reqdto "car-rental-ops/internal/handler/dto/request"
	resdto "car-rental-ops/internal/handler/dto/response"
	"car-rental-ops/internal/handler/httperr"
	"car-rental-ops/internal/handler/middleware"
	"car-rental-ops/internal/pkg/errs"
	"car-rental-ops/internal/usecase/commands"
	"car-rental-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	q              queries.BookingQueries
	cmds           commands.BookingCommands
	signedStatuses []string
}

func NewBookingHandler(q queries.BookingQueries, cmds commands.BookingCommands, signedStatuses []string) *BookingHandler {
	return &BookingHandler{q: q, cmds: cmds, signedStatuses: signedStatuses}
}

// @Summary List signed active bookings
// @Description Bookings in an active status whose agreement is signed by both the customer and the company
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SignedBookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings/signed [get]
func (h *BookingHandler) ListSigned(c *gin.Context) {
	views, err := h.q.ListSignedActiveBookings(c.Request.Context(), h.signedStatuses)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bookings", nil)
		return
	}
	resp, err := resdto.FromSignedBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Get a booking by ID with its car model
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update booking status
// @Description Move a booking along its status lifecycle and queue a customer notification
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status, actorID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, commands.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Status transition not allowed", nil)
		case errs.Is(err, commands.ErrUnknownBookingStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown booking status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}
