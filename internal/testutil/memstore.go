// Package testutil provides in-memory repositories and HTTP helpers so
// services and the router can be exercised without PostgreSQL.
package testutil

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"

	"github.com/google/uuid"
)

// MemStore holds every table in memory. All repositories built from the same
// store see each other's writes, so joins behave like the SQL versions.
type MemStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]entity.User
	admins   map[uuid.UUID]entity.AdminUser
	events   map[uuid.UUID]entity.WeddingEvent
	vendors  map[uuid.UUID]entity.Vendor
	bookings map[uuid.UUID]entity.VendorBooking
	messages map[uuid.UUID]entity.ContactMessage
	apps     map[uuid.UUID]entity.VendorApplication

	// Err, when set, is returned by every repository call.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:    map[uuid.UUID]entity.User{},
		admins:   map[uuid.UUID]entity.AdminUser{},
		events:   map[uuid.UUID]entity.WeddingEvent{},
		vendors:  map[uuid.UUID]entity.Vendor{},
		bookings: map[uuid.UUID]entity.VendorBooking{},
		messages: map[uuid.UUID]entity.ContactMessage{},
		apps:     map[uuid.UUID]entity.VendorApplication{},
	}
}

// Repository wires every in-memory repository into the production aggregate.
func (s *MemStore) Repository() *repository.Repository {
	return &repository.Repository{
		User:        &memUsers{s},
		Admin:       &memAdmins{s},
		Event:       &memEvents{s},
		Vendor:      &memVendors{s},
		Booking:     &memBookings{s},
		Message:     &memMessages{s},
		Application: &memApps{s},
	}
}

// BookingRows counts stored bookings, including ones whose vendor is gone.
func (s *MemStore) BookingRows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *MemStore) lock() (func(), error) {
	s.mu.Lock()
	if s.Err != nil {
		s.mu.Unlock()
		return nil, s.Err
	}
	return s.mu.Unlock, nil
}

func notFound(table string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", table, id, repository.ErrNotFound)
}

// ==================== users ====================

type memUsers struct{ s *MemStore }

func (r *memUsers) Create(ctx context.Context, user *entity.User) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUsers) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) CountAll(ctx context.Context) (int64, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()
	return int64(len(r.s.users)), nil
}

// ==================== admins ====================

type memAdmins struct{ s *MemStore }

func (r *memAdmins) Create(ctx context.Context, admin *entity.AdminUser) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	for _, a := range r.s.admins {
		if a.Email == admin.Email {
			return fmt.Errorf("create admin %s: %w", admin.Email, repository.ErrDuplicate)
		}
	}
	r.s.admins[admin.ID] = *admin
	return nil
}

func (r *memAdmins) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, a := range r.s.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

// ==================== events ====================

type memEvents struct{ s *MemStore }

func (r *memEvents) Create(ctx context.Context, event *entity.WeddingEvent) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	r.s.events[event.ID] = *event
	return nil
}

func (r *memEvents) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WeddingEvent, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*entity.WeddingEvent, 0)
	for _, e := range r.s.events {
		if e.UserID == userID {
			out = append(out, &e)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.WeddingEvent) int {
		return a.EventDate.Compare(b.EventDate)
	})
	return out, nil
}

func (r *memEvents) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.WeddingEvent, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	e, ok := r.s.events[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	return &e, nil
}

func (r *memEvents) UpdateForUser(ctx context.Context, event *entity.WeddingEvent) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	e, ok := r.s.events[event.ID]
	if !ok || e.UserID != event.UserID {
		return notFound("event", event.ID)
	}
	e.EventName = event.EventName
	e.EventDate = event.EventDate
	e.EventTime = event.EventTime
	e.Location = event.Location
	e.Description = event.Description
	r.s.events[e.ID] = e
	return nil
}

func (r *memEvents) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	e, ok := r.s.events[id]
	if !ok || e.UserID != userID {
		return notFound("event", id)
	}
	delete(r.s.events, id)
	return nil
}

func (r *memEvents) CancelForUser(ctx context.Context, id, userID uuid.UUID) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	e, ok := r.s.events[id]
	if !ok || e.UserID != userID {
		return notFound("event", id)
	}
	e.Status = entity.EventCancelled
	r.s.events[id] = e
	return nil
}

// ==================== vendors ====================

type memVendors struct{ s *MemStore }

func (r *memVendors) Create(ctx context.Context, vendor *entity.Vendor) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	r.s.vendors[vendor.ID] = *vendor
	return nil
}

func (r *memVendors) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	v, ok := r.s.vendors[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *memVendors) FindAll(ctx context.Context, category string) ([]*entity.Vendor, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*entity.Vendor, 0)
	for _, v := range r.s.vendors {
		if category == "" || v.Category == category {
			out = append(out, &v)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Vendor) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return out, nil
}

func (r *memVendors) FindAllNewest(ctx context.Context) ([]*entity.Vendor, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*entity.Vendor, 0, len(r.s.vendors))
	for _, v := range r.s.vendors {
		out = append(out, &v)
	}
	slices.SortStableFunc(out, func(a, b *entity.Vendor) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *memVendors) Update(ctx context.Context, vendor *entity.Vendor) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	v, ok := r.s.vendors[vendor.ID]
	if !ok {
		return notFound("vendor", vendor.ID)
	}
	vendor.CreatedAt = v.CreatedAt
	r.s.vendors[vendor.ID] = *vendor
	return nil
}

func (r *memVendors) Delete(ctx context.Context, id uuid.UUID) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if _, ok := r.s.vendors[id]; !ok {
		return notFound("vendor", id)
	}
	delete(r.s.vendors, id)
	return nil
}

func (r *memVendors) CountAll(ctx context.Context) (int64, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()
	return int64(len(r.s.vendors)), nil
}

// ==================== bookings ====================

type memBookings struct{ s *MemStore }

func (r *memBookings) Create(ctx context.Context, booking *entity.VendorBooking) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	r.s.bookings[booking.ID] = *booking
	return nil
}

// join mirrors the inner joins: bookings without a vendor (or user) drop out.
func (r *memBookings) join(b entity.VendorBooking, withUser bool) (*entity.BookingDetail, bool) {
	v, ok := r.s.vendors[b.VendorID]
	if !ok {
		return nil, false
	}
	d := &entity.BookingDetail{VendorBooking: b, VendorName: v.Name, Category: v.Category}
	if withUser {
		u, ok := r.s.users[b.UserID]
		if !ok {
			return nil, false
		}
		d.UserName, d.UserEmail = u.Name, u.Email
	}
	return d, true
}

func (r *memBookings) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*entity.BookingDetail, 0)
	for _, b := range r.s.bookings {
		if b.UserID != userID {
			continue
		}
		if d, ok := r.join(b, false); ok {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.BookingDetail) int {
		return a.BookingDate.Compare(b.BookingDate)
	})
	return out, nil
}

func (r *memBookings) FindAll(ctx context.Context) ([]*entity.BookingDetail, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*entity.BookingDetail, 0)
	for _, b := range r.s.bookings {
		if d, ok := r.join(b, true); ok {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.BookingDetail) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *memBookings) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return notFound("booking", id)
	}
	b.Status = status
	r.s.bookings[id] = b
	return nil
}

func (r *memBookings) CountAll(ctx context.Context) (int64, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()
	return int64(len(r.s.bookings)), nil
}

// ==================== messages ====================

type memMessages struct{ s *MemStore }

func (r *memMessages) Create(ctx context.Context, msg *entity.ContactMessage) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	r.s.messages[msg.ID] = *msg
	return nil
}

func (r *memMessages) FindAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*entity.ContactMessage, 0, len(r.s.messages))
	for _, m := range r.s.messages {
		out = append(out, &m)
	}
	slices.SortStableFunc(out, func(a, b *entity.ContactMessage) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *memMessages) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	m, ok := r.s.messages[id]
	if !ok {
		return notFound("message", id)
	}
	m.Status = status
	r.s.messages[id] = m
	return nil
}

func (r *memMessages) CountByStatus(ctx context.Context, status entity.MessageStatus) (int64, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	var n int64
	for _, m := range r.s.messages {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

// ==================== applications ====================

type memApps struct{ s *MemStore }

func (r *memApps) Create(ctx context.Context, app *entity.VendorApplication) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	r.s.apps[app.ID] = *app
	return nil
}

func (r *memApps) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorApplication, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	a, ok := r.s.apps[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memApps) FindAll(ctx context.Context) ([]*entity.VendorApplication, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*entity.VendorApplication, 0, len(r.s.apps))
	for _, a := range r.s.apps {
		out = append(out, &a)
	}
	slices.SortStableFunc(out, func(a, b *entity.VendorApplication) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *memApps) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus, notes *string) error {
	unlock, err := r.s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	a, ok := r.s.apps[id]
	if !ok {
		return notFound("vendor application", id)
	}
	if a.Status == entity.ApplicationApproved {
		return fmt.Errorf("vendor application %s: %w", id, repository.ErrAlreadyApproved)
	}
	a.Status = status
	a.AdminNotes = notes
	r.s.apps[id] = a
	return nil
}

// Approve holds the store lock for the whole read-check-write, standing in
// for the row lock of the SQL version.
func (r *memApps) Approve(ctx context.Context, id uuid.UUID, notes *string) (*entity.Vendor, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	a, ok := r.s.apps[id]
	if !ok {
		return nil, notFound("vendor application", id)
	}
	if a.Status == entity.ApplicationApproved {
		return nil, fmt.Errorf("vendor application %s: %w", id, repository.ErrAlreadyApproved)
	}

	a.Status = entity.ApplicationApproved
	a.AdminNotes = notes
	r.s.apps[id] = a

	vendor := a.ToVendor()
	r.s.vendors[vendor.ID] = *vendor
	return vendor, nil
}

func (r *memApps) CountByStatus(ctx context.Context, status entity.ApplicationStatus) (int64, error) {
	unlock, err := r.s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	var n int64
	for _, a := range r.s.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}
