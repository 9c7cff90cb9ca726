package api

import (
	"net/http"

	resdto "car-rental-ops/internal/handler/dto/response"
	"car-rental-ops/internal/handler/httperr"
	"car-rental-ops/internal/pkg/errs"
	"car-rental-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AgreementHandler struct {
	q queries.AgreementQueries
}

func NewAgreementHandler(q queries.AgreementQueries) *AgreementHandler {
	return &AgreementHandler{q: q}
}

// @Summary Agreement signature diagnostics
// @Description Shows which signature artifacts were found on an agreement
// @Tags admin-agreements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Success 200 {object} resdto.AgreementSignatureResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/agreements/{id}/signatures [get]
func (h *AgreementHandler) Signatures(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid agreement ID format", nil)
		return
	}
	view, err := h.q.GetSignatureStatus(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrAgreementNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Agreement not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgreementSignatureView(view))
}
