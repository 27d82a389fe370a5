package usecase

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/pkg/auth"

	"go.uber.org/zap"
)

// SeedService bootstraps a fresh database. Both operations are safe to re-run.
type SeedService interface {
	// SeedAdmin creates the admin account unless the email is already taken.
	SeedAdmin(ctx context.Context, name, email, password string) (created bool, err error)
	// SeedVendors inserts the sample catalogue when the vendors table is empty.
	SeedVendors(ctx context.Context) (inserted int, err error)
}

type seedService struct {
	repo       *repository.Repository
	bcryptCost int
	log        *zap.Logger
}

func NewSeedService(repo *repository.Repository, bcryptCost int, log *zap.Logger) SeedService {
	return &seedService{
		repo:       repo,
		bcryptCost: bcryptCost,
		log:        log.With(zap.String("service", "seed")),
	}
}

func (s *seedService) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, newError(ErrValidation, "admin email and password are required")
	}

	existing, err := s.repo.Admin.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		s.log.Info("Admin already exists", zap.String("email", email))
		return false, nil
	}

	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.AdminUser{
		Base:         entity.NewBase(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         entity.RoleAdmin,
	}
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}

	s.log.Info("Admin created", zap.String("admin_id", admin.ID.String()), zap.String("email", email))
	return true, nil
}

func (s *seedService) SeedVendors(ctx context.Context) (int, error) {
	count, err := s.repo.Vendor.CountAll(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Info("Vendors already exist, skipping seed", zap.Int64("count", count))
		return 0, nil
	}

	for i, v := range SampleVendors() {
		if err := s.repo.Vendor.Create(ctx, v); err != nil {
			return i, err
		}
	}

	s.log.Info("Vendors seeded", zap.Int("count", len(sampleVendors)))
	return len(sampleVendors), nil
}

type sampleVendor struct {
	name, category, contact, price string
	rating                         float64
}

var sampleVendors = []sampleVendor{
	{"Elegant Events Photography", "Photography", "contact@elegantevents.com | (555) 123-4567", "$2000-$5000", 4.8},
	{"Dream Wedding Venues", "Venue", "info@dreamvenues.com | (555) 234-5678", "$5000-$15000", 4.9},
	{"Blissful Blooms Florist", "Florist", "hello@blissfulblooms.com | (555) 345-6789", "$800-$2500", 4.7},
	{"Harmony Wedding Band", "Entertainment", "book@harmonyband.com | (555) 456-7890", "$1500-$4000", 4.6},
	{"Culinary Delights Catering", "Catering", "events@culinarydelights.com | (555) 567-8901", "$50-$150 per person", 4.8},
	{"Perfect Match DJ Services", "Entertainment", "dj@perfectmatch.com | (555) 678-9012", "$800-$2000", 4.5},
	{"Timeless Beauty Salon", "Beauty", "beauty@timeless.com | (555) 789-0123", "$300-$800", 4.7},
	{"Luxury Limo Service", "Transportation", "rides@luxurylimo.com | (555) 890-1234", "$200-$500", 4.4},
}

// SampleVendors returns fresh rows for the demo catalogue.
func SampleVendors() []*entity.Vendor {
	out := make([]*entity.Vendor, 0, len(sampleVendors))
	for _, sv := range sampleVendors {
		contact, price := sv.contact, sv.price
		out = append(out, &entity.Vendor{
			Base:        entity.NewBase(),
			Name:        sv.name,
			Category:    sv.category,
			ContactInfo: &contact,
			PriceRange:  &price,
			Rating:      sv.rating,
		})
	}
	return out
}
