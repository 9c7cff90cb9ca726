package response

import (
	"time"

	"car-rental-ops/internal/pkg/errs"
	"car-rental-ops/internal/usecase/commands"
	"car-rental-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CarResponse struct {
	ID       uuid.UUID `json:"id"`
	Brand    string    `json:"brand"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl"`
}

type BookingResponse struct {
	ID            uuid.UUID   `json:"id"`
	Car           CarResponse `json:"car"`
	PickupDate    time.Time   `json:"pickupDate"`
	DropoffDate   time.Time   `json:"dropoffDate"`
	Status        string      `json:"status"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	TotalAmount   string      `json:"totalAmount"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type SignedBookingResponse struct {
	BookingResponse
	AgreementID         uuid.UUID         `json:"agreementId"`
	VehicleRegistration string            `json:"vehicleRegistration"`
	Signatures          SignatureResponse `json:"signatures"`
}

type BookingStatusResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// amounts are rendered with two decimals to keep currency formatting stable.
var decimalToString = copier.TypeConverter{
	SrcType: decimal.Decimal{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		d, ok := src.(decimal.Decimal)
		if !ok {
			return nil, errs.New("expected decimal amount")
		}
		return d.StringFixed(2), nil
	},
}

var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{decimalToString},
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.CopyWithOption(&resp, v, viewCopyOption); err != nil {
		return nil, errs.Wrap(err, "map booking view")
	}
	return &resp, nil
}

func FromSignedBookingViews(views []*queries.SignedBookingView) ([]*SignedBookingResponse, error) {
	out := make([]*SignedBookingResponse, len(views))
	for i, v := range views {
		b, err := FromBookingView(&v.Booking)
		if err != nil {
			return nil, err
		}
		out[i] = &SignedBookingResponse{
			BookingResponse:     *b,
			AgreementID:         v.AgreementID,
			VehicleRegistration: v.VehicleRegistration,
			Signatures:          FromSignatureStatus(v.Signatures),
		}
	}
	return out, nil
}

func FromStatusChange(r *commands.StatusChangeResult) *BookingStatusResponse {
	return &BookingStatusResponse{
		BookingID:      r.BookingID,
		PreviousStatus: r.PreviousStatus.String(),
		Status:         r.Status.String(),
		UpdatedAt:      r.UpdatedAt,
	}
}
