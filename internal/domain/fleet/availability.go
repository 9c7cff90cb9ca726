package fleet

import (
	"time"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/pkg/errs"
)

var ErrInvalidInterval = errs.ErrInvalidInterval

// Interval is a requested rental window. Both ends are inclusive.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (*Interval, error) {
	if end.Before(start) {
		return nil, ErrInvalidInterval
	}
	return &Interval{Start: start, End: end}, nil
}

// Instant is the degenerate interval used for "is it out right now" checks.
func Instant(at time.Time) Interval {
	return Interval{Start: at, End: at}
}

// Overlaps reports whether [start, end] intersects the interval. Touching
// boundaries count as overlapping so a same-day handover blocks the vehicle.
func (i Interval) Overlaps(start, end time.Time) bool {
	return !start.After(i.End) && !end.Before(i.Start)
}

// BlockedRegistrations returns the normalized registrations of agreements
// overlapping the interval. Agreements without a registration are ignored.
func BlockedRegistrations(blocking []agreement.Agreement, requested Interval) map[string]struct{} {
	blocked := make(map[string]struct{})
	for _, a := range blocking {
		key := NormalizeRegistration(a.VehicleRegistration)
		if key == "" {
			continue
		}
		if requested.Overlaps(a.StartDate, a.EndDate) {
			blocked[key] = struct{}{}
		}
	}
	return blocked
}

// FilterAvailable returns the deduplicated candidates that no blocking
// agreement claims during requested, preserving input order. The caller
// decides which agreement statuses block. A nil interval means no date scope
// was asked for and every deduplicated candidate is returned.
func FilterAvailable(candidates []Vehicle, blocking []agreement.Agreement, requested *Interval) []Vehicle {
	unique := DedupeByRegistration(candidates)
	if requested == nil {
		return unique
	}

	blocked := BlockedRegistrations(blocking, *requested)
	out := make([]Vehicle, 0, len(unique))
	for _, v := range unique {
		if _, ok := blocked[NormalizeRegistration(v.RegistrationNumber)]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}
