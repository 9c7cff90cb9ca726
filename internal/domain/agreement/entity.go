package agreement

import (
	"time"

	"github.com/google/uuid"
)

// Agreement is the subset of a rental agreement needed to classify signatures
// and block fleet availability. Storage NULLs arrive as empty strings.
type Agreement struct {
	ID                    uuid.UUID
	BookingID             *uuid.UUID
	CustomerSignatureData string
	UnsignedAgreementURL  string
	SignedAgreementURL    string
	Status                string
	VehicleRegistration   string
	StartDate             time.Time
	EndDate               time.Time
}

// FirstByBooking indexes agreements by booking id. When a booking has several
// agreements the first one in input order is kept; callers fetch in
// created_at order so this selects the oldest. Legacy rows without a booking
// are skipped.
func FirstByBooking(agreements []Agreement) map[uuid.UUID]Agreement {
	out := make(map[uuid.UUID]Agreement, len(agreements))
	for _, a := range agreements {
		if a.BookingID == nil {
			continue
		}
		if _, seen := out[*a.BookingID]; seen {
			continue
		}
		out[*a.BookingID] = a
	}
	return out
}
