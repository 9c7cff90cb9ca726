package queries

import (
	"context"
	"log/slog"

	"car-rental-ops/internal/domain/agreement"
	"car-rental-ops/internal/infra"
	"car-rental-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.ErrBookingNotFound

type BookingQueries interface {
	// ListSignedActiveBookings returns bookings in one of statuses whose first
	// agreement is signed by both parties, in storage order.
	ListSignedActiveBookings(ctx context.Context, statuses []string) ([]*SignedBookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings   BookingReadStore
	agreements AgreementReadStore
	logger     *slog.Logger
}

func NewBookingQueries(bookings BookingReadStore, agreements AgreementReadStore, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{
		bookings:   bookings,
		agreements: agreements,
		logger:     logger,
	}
}

func (q *bookingQueriesImpl) ListSignedActiveBookings(ctx context.Context, statuses []string) ([]*SignedBookingView, error) {
	bookings, err := q.bookings.ListWithCarByStatuses(ctx, statuses)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return []*SignedBookingView{}, nil
	}

	ids := make([]uuid.UUID, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	agreements, err := q.agreements.ListByBookingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byBooking := agreement.FirstByBooking(agreements)

	out := make([]*SignedBookingView, 0, len(bookings))
	for _, b := range bookings {
		a, ok := byBooking[b.ID]
		if !ok {
			continue
		}
		st := agreement.ResolveSignatures(a)
		if !st.IsFullySigned {
			q.logger.DebugContext(ctx, "booking agreement not fully signed",
				"booking_id", b.ID,
				"agreement_id", a.ID,
				"has_customer_signature", st.HasCustomerSignature,
				"admin_signal", st.AdminSignal)
			continue
		}
		out = append(out, &SignedBookingView{
			Booking:             *b,
			AgreementID:         a.ID,
			VehicleRegistration: a.VehicleRegistration,
			Signatures:          st,
		})
	}
	return out, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
