package response

import (
	"time"

	"wedding-planner/internal/data/entity"
)

// DateLayout is the wire format of event_date and booking_date.
const DateLayout = "2006-01-02"

type EventResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	EventName   string    `json:"event_name"`
	EventDate   string    `json:"event_date"`
	EventTime   *string   `json:"event_time"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type VendorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	ContactInfo *string   `json:"contact_info"`
	PriceRange  *string   `json:"price_range"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingResponse carries user_name/user_email only in admin listings.
type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	VendorID    string    `json:"vendor_id"`
	BookingDate string    `json:"booking_date"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	VendorName  string    `json:"vendor_name"`
	Category    string    `json:"category"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicationResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Category        string    `json:"category"`
	BusinessName    string    `json:"business_name"`
	Description     *string   `json:"description"`
	ExperienceYears *int      `json:"experience_years"`
	PortfolioURL    *string   `json:"portfolio_url"`
	Status          string    `json:"status"`
	AdminNotes      *string   `json:"admin_notes"`
	CreatedAt       time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalBookings       int64 `json:"totalBookings"`
	TotalVendors        int64 `json:"totalVendors"`
	UnreadMessages      int64 `json:"unreadMessages"`
	PendingApplications int64 `json:"pendingApplications"`
}

// Creation acknowledgements. Each names the new row under its own key.

type EventCreated struct {
	Message string `json:"message"`
	EventID string `json:"eventId"`
}

type BookingCreated struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

type MessageCreated struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

type ApplicationCreated struct {
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

type VendorCreated struct {
	Message  string `json:"message"`
	VendorID string `json:"vendorId"`
}

func EventToResponse(e *entity.WeddingEvent) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		EventName:   e.EventName,
		EventDate:   e.EventDate.Format(DateLayout),
		EventTime:   e.EventTime,
		Location:    e.Location,
		Description: e.Description,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}

func VendorToResponse(v *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Category:    v.Category,
		ContactInfo: v.ContactInfo,
		PriceRange:  v.PriceRange,
		Rating:      v.Rating,
		CreatedAt:   v.CreatedAt,
	}
}

func BookingToResponse(b *entity.BookingDetail) BookingResponse {
	return BookingResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		VendorID:    b.VendorID.String(),
		BookingDate: b.BookingDate.Format(DateLayout),
		Status:      string(b.Status),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		VendorName:  b.VendorName,
		Category:    b.Category,
		UserName:    b.UserName,
		UserEmail:   b.UserEmail,
	}
}

func MessageToResponse(m *entity.ContactMessage) MessageResponse {
	return MessageResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func ApplicationToResponse(a *entity.VendorApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID.String(),
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		Category:        a.Category,
		BusinessName:    a.BusinessName,
		Description:     a.Description,
		ExperienceYears: a.ExperienceYears,
		PortfolioURL:    a.PortfolioURL,
		Status:          string(a.Status),
		AdminNotes:      a.AdminNotes,
		CreatedAt:       a.CreatedAt,
	}
}

// mapSlice converts every element with fn; the result is never nil so empty lists encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func EventsToResponse(in []*entity.WeddingEvent) []EventResponse {
	return mapSlice(in, EventToResponse)
}

func VendorsToResponse(in []*entity.Vendor) []VendorResponse {
	return mapSlice(in, VendorToResponse)
}

func BookingsToResponse(in []*entity.BookingDetail) []BookingResponse {
	return mapSlice(in, BookingToResponse)
}

func MessagesToResponse(in []*entity.ContactMessage) []MessageResponse {
	return mapSlice(in, MessageToResponse)
}

func ApplicationsToResponse(in []*entity.VendorApplication) []ApplicationResponse {
	return mapSlice(in, ApplicationToResponse)
}
