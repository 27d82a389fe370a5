package usecase

import (
	"context"
	"strings"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VendorService interface {
	// List is the public catalogue, best rated first.
	List(ctx context.Context, category string) ([]response.VendorResponse, error)
	// ListAll is the admin view, newest first.
	ListAll(ctx context.Context) ([]response.VendorResponse, error)
	Create(ctx context.Context, req *request.VendorRequest) (*response.VendorCreated, error)
	Update(ctx context.Context, vendorID uuid.UUID, req *request.VendorRequest) error
	Delete(ctx context.Context, vendorID uuid.UUID) error
}

type vendorService struct {
	vendorRepo repository.VendorRepository
	log        *zap.Logger
}

func NewVendorService(vendorRepo repository.VendorRepository, log *zap.Logger) VendorService {
	return &vendorService{
		vendorRepo: vendorRepo,
		log:        log.With(zap.String("service", "vendor")),
	}
}

var errVendorNotFound = newError(ErrNotFound, "Vendor not found")

func (s *vendorService) List(ctx context.Context, category string) ([]response.VendorResponse, error) {
	vendors, err := s.vendorRepo.FindAll(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	return response.VendorsToResponse(vendors), nil
}

func (s *vendorService) ListAll(ctx context.Context) ([]response.VendorResponse, error) {
	vendors, err := s.vendorRepo.FindAllNewest(ctx)
	if err != nil {
		return nil, err
	}
	return response.VendorsToResponse(vendors), nil
}

func (s *vendorService) Create(ctx context.Context, req *request.VendorRequest) (*response.VendorCreated, error) {
	if err := validate(req, "Name and category are required"); err != nil {
		return nil, err
	}

	vendor := &entity.Vendor{Base: entity.NewBase()}
	applyVendorRequest(vendor, req)

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.log.Info("Vendor created", zap.String("vendor_id", vendor.ID.String()), zap.String("name", vendor.Name))

	return &response.VendorCreated{
		Message:  "Vendor created successfully",
		VendorID: vendor.ID.String(),
	}, nil
}

func (s *vendorService) Update(ctx context.Context, vendorID uuid.UUID, req *request.VendorRequest) error {
	if err := validate(req, "Name and category are required"); err != nil {
		return err
	}

	vendor := &entity.Vendor{Base: entity.Base{ID: vendorID}}
	applyVendorRequest(vendor, req)

	return mapNotFound(s.vendorRepo.Update(ctx, vendor), errVendorNotFound)
}

// Delete removes the vendor outright; its bookings are left in place.
func (s *vendorService) Delete(ctx context.Context, vendorID uuid.UUID) error {
	return mapNotFound(s.vendorRepo.Delete(ctx, vendorID), errVendorNotFound)
}

func applyVendorRequest(vendor *entity.Vendor, req *request.VendorRequest) {
	vendor.Name = req.Name
	vendor.Category = req.Category
	vendor.ContactInfo = blankToNil(req.ContactInfo)
	vendor.PriceRange = blankToNil(req.PriceRange)
	vendor.Rating = 0
	if req.Rating != nil {
		vendor.Rating = *req.Rating
	}
}
