package request

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending_payment confirmed active completed cancelled expired"`
}
