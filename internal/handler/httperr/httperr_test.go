//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental-ops/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	return c, w
}

func TestAbortWithError(t *testing.T) {
	t.Run("recorded error stays public and carries the response", func(t *testing.T) {
		c, w := newContext()
		cause := errors.New("row locked")

		httperr.AbortWithError(c, http.StatusConflict, cause, "conflict", nil)

		require.Len(t, c.Errors, 1)
		recorded := c.Errors[0]
		assert.True(t, recorded.IsType(gin.ErrorTypePublic))
		assert.ErrorIs(t, recorded.Err, cause)

		resp, ok := recorded.Meta.(httperr.Response)
		require.True(t, ok, "meta should hold the error response")
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Equal(t, "conflict", resp.Error.Message)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"conflict"}}`, w.Body.String())
	})

	t.Run("nil error is replaced by the message", func(t *testing.T) {
		c, _ := newContext()

		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)

		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "Access token required")
	})
}
