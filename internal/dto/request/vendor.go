package request

// VendorRequest is the admin create/update body. Rating is not range checked.
type VendorRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	ContactInfo *string  `json:"contact_info,omitempty"`
	PriceRange  *string  `json:"price_range,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}
