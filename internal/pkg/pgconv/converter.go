package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrInvalidDecimalValue = errors.New("invalid decimal value in numeric text")

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

// TextOrEmpty maps SQL NULL to "" so domain code only deals with absent-or-present strings.
func TextOrEmpty(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// DecimalFromText parses numeric columns selected as ::text; NULL becomes zero.
func DecimalFromText(pt pgtype.Text) (decimal.Decimal, error) {
	if !pt.Valid || pt.String == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(pt.String)
	if err != nil {
		return decimal.Zero, ErrInvalidDecimalValue
	}
	return d, nil
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

// UUIDsToStrings feeds uuid lists to `= ANY($n::uuid[])` parameters.
func UUIDsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
