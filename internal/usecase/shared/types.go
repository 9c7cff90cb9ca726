package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationKindBookingStatusChanged = "booking_status_changed"
	NotificationTopicBookings            = "bookings"
)

// BookingStatusChanged is the payload of a booking_status_changed notification.
// ActorID is nil for system transitions such as expiry.
type BookingStatusChanged struct {
	BookingID     uuid.UUID  `json:"booking_id"`
	From          string     `json:"from"`
	To            string     `json:"to"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	ChangedAt     time.Time  `json:"changed_at"`
}
