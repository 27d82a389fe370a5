package entity

// Vendor rating is stored as given; nothing clamps it to 0..5.
type Vendor struct {
	Base
	Name        string  `db:"name"`
	Category    string  `db:"category"`
	ContactInfo *string `db:"contact_info"`
	PriceRange  *string `db:"price_range"`
	Rating      float64 `db:"rating"`
}
