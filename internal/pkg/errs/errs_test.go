//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"car-rental-ops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches sentinel and keeps message", func(t *testing.T) {
		base := errors.New("connection reset")
		marked := errs.Mark(base, errs.ErrBookingNotFound)

		assert.True(t, errs.Is(marked, errs.ErrBookingNotFound))
		assert.True(t, errs.Is(marked, base))
		assert.False(t, errs.Is(marked, errs.ErrVehicleNotFound))
		assert.Equal(t, "connection reset", marked.Error())
	})

	t.Run("nil error returns the sentinel itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrBookingNotFound, errs.Mark(nil, errs.ErrBookingNotFound))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	wrapped := errs.Wrapf(errs.ErrVehicleNotFound, "vehicle %s", "abc")
	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, errs.ErrVehicleNotFound))
	assert.Contains(t, wrapped.Error(), "vehicle abc")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
