package errs

// Sentinels shared by the usecase layers; handlers map them to HTTP statuses.
var (
	// Booking errors
	ErrBookingNotFound         = New("booking not found")
	ErrInvalidStatusTransition = New("invalid booking status transition")
	ErrUnknownBookingStatus    = New("unknown booking status")

	// Agreement errors
	ErrAgreementNotFound = New("agreement not found")

	// Fleet errors
	ErrVehicleNotFound       = New("fleet vehicle not found")
	ErrUnknownVehicleStatus  = New("unknown fleet vehicle status")
	ErrInvalidInterval       = New("invalid availability interval")
	ErrBlockingStatusesEmpty = New("blocking statuses must not be empty")
)
