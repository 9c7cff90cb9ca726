//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"car-rental-ops/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		expected infra.RepositoryErrorKind
	}{
		{"plain error is a db failure", errors.New("boom"), nil, infra.KindDBFailure},
		{"unique violation", &pgconn.PgError{Code: "23505"}, nil, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, nil, infra.KindForeignKeyViolated},
		{"check violation", &pgconn.PgError{Code: "23514"}, nil, infra.KindCheckViolated},
		{"other pg code", &pgconn.PgError{Code: "42P01"}, nil, infra.KindDBFailure},
		{"explicit kind wins", &pgconn.PgError{Code: "23505"}, []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.expected), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}

	t.Run("non repository error has no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindDBFailure))
	})
}
