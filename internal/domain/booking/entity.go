package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID            uuid.UUID
	CarID         uuid.UUID
	PickupDate    time.Time
	DropoffDate   time.Time
	Status        Status
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransitionTo moves the booking to next, stamping UpdatedAt.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !b.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}

// IsStalePending reports whether checkout was started before cutoff and never paid.
func (b *Booking) IsStalePending(cutoff time.Time) bool {
	return b.Status == StatusPendingPayment && b.CreatedAt.Before(cutoff)
}
