package request

type CreateBookingRequest struct {
	VendorID    string  `json:"vendor_id" validate:"required,uuid"`
	BookingDate string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Notes       *string `json:"notes,omitempty"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
