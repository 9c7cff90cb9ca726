package booking

import "car-rental-ops/internal/pkg/errs"

var (
	ErrUnknownBookingStatus    = errs.ErrUnknownBookingStatus
	ErrInvalidStatusTransition = errs.ErrInvalidStatusTransition
)

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusActive         Status = "active"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusExpired        Status = "expired"
)

var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusConfirmed, StatusCancelled, StatusExpired},
	StatusConfirmed:      {StatusActive, StatusCancelled},
	StatusActive:         {StatusCompleted},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPendingPayment, StatusConfirmed, StatusActive,
		StatusCompleted, StatusCancelled, StatusExpired:
		return st, nil
	default:
		return "", ErrUnknownBookingStatus
	}
}

func (s Status) String() string { return string(s) }

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
