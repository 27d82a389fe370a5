package entity

import "fmt"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// PlaceholderPriceRange is given to every vendor created from an application.
const PlaceholderPriceRange = "Contact for pricing"

type VendorApplication struct {
	Base
	Name            string            `db:"name"`
	Email           string            `db:"email"`
	Phone           *string           `db:"phone"`
	Category        string            `db:"category"`
	BusinessName    string            `db:"business_name"`
	Description     *string           `db:"description"`
	ExperienceYears *int              `db:"experience_years"`
	PortfolioURL    *string           `db:"portfolio_url"`
	Status          ApplicationStatus `db:"status"`
	AdminNotes      *string           `db:"admin_notes"`
}

// ContactInfo renders "Email: x" or "Email: x, Phone: y".
func (a *VendorApplication) ContactInfo() string {
	if a.Phone != nil && *a.Phone != "" {
		return fmt.Sprintf("Email: %s, Phone: %s", a.Email, *a.Phone)
	}
	return "Email: " + a.Email
}

// ToVendor synthesises the vendor row an approval inserts.
func (a *VendorApplication) ToVendor() *Vendor {
	contact := a.ContactInfo()
	price := PlaceholderPriceRange
	return &Vendor{
		Base:        NewBase(),
		Name:        a.BusinessName,
		Category:    a.Category,
		ContactInfo: &contact,
		PriceRange:  &price,
		Rating:      0,
	}
}
