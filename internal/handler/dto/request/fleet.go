package request

import (
	"strings"
	"time"

	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

const dateOnlyLayout = "2006-01-02"

var (
	ErrIncompleteInterval = errs.New("start and end must be provided together")
	ErrInvalidDate        = errs.New("dates must be RFC3339 or YYYY-MM-DD")
)

type AvailabilityQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
	CarID string `form:"car_id" binding:"omitempty,uuid"`
}

// Interval returns nil when neither bound is given. A date-only start covers
// the day from midnight UTC and a date-only end runs to the last instant of the day.
func (q AvailabilityQuery) Interval() (*fleet.Interval, error) {
	start, end := strings.TrimSpace(q.Start), strings.TrimSpace(q.End)
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, ErrIncompleteInterval
	}

	s, err := parseBound(start, false)
	if err != nil {
		return nil, err
	}
	e, err := parseBound(end, true)
	if err != nil {
		return nil, err
	}

	return fleet.NewInterval(s, e)
}

func (q AvailabilityQuery) CarUUID() *uuid.UUID {
	if q.CarID == "" {
		return nil
	}
	id, err := uuid.Parse(q.CarID)
	if err != nil {
		return nil
	}
	return &id
}

func parseBound(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	d, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if endOfDay {
		return d.Add(24*time.Hour - time.Nanosecond), nil
	}
	return d, nil
}

type FleetStatusQuery struct {
	At           string `form:"at"`
	Registration string `form:"registration" binding:"omitempty,registration"`
}

// AtOrNow falls back to now when no instant is given.
func (q FleetStatusQuery) AtOrNow(now time.Time) (time.Time, error) {
	if strings.TrimSpace(q.At) == "" {
		return now, nil
	}
	return parseBound(strings.TrimSpace(q.At), false)
}

type UpdateVehicleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}
