package request

type VendorApplicationRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty"`
	Category        string  `json:"category" validate:"required"`
	BusinessName    string  `json:"business_name" validate:"required"`
	Description     *string `json:"description,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0"`
	PortfolioURL    *string `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

// ApplicationStatusRequest cannot approve; approval has its own route.
type ApplicationStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=pending rejected"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type ApproveApplicationRequest struct {
	AdminNotes *string `json:"admin_notes,omitempty"`
}
