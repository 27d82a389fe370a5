package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

type VendorBooking struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	VendorID    uuid.UUID     `db:"vendor_id"`
	BookingDate time.Time     `db:"booking_date"`
	Status      BookingStatus `db:"status"`
	Notes       *string       `db:"notes"`
}

// BookingDetail is a booking joined with its vendor, and for admin listings its user.
type BookingDetail struct {
	VendorBooking
	VendorName string `db:"vendor_name"`
	Category   string `db:"category"`
	UserName   string `db:"user_name"`
	UserEmail  string `db:"user_email"`
}
