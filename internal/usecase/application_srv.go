package usecase

import (
	"context"
	"errors"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplicationService moves applications pending -> approved | rejected.
// Approval is one-way and happens only through Approve.
type ApplicationService interface {
	Submit(ctx context.Context, req *request.VendorApplicationRequest) (*response.ApplicationCreated, error)
	List(ctx context.Context) ([]response.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, applicationID uuid.UUID, req *request.ApplicationStatusRequest) error
	Approve(ctx context.Context, applicationID uuid.UUID, req *request.ApproveApplicationRequest) (*response.VendorCreated, error)
}

type applicationService struct {
	appRepo repository.ApplicationRepository
	log     *zap.Logger
}

func NewApplicationService(appRepo repository.ApplicationRepository, log *zap.Logger) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		log:     log.With(zap.String("service", "application")),
	}
}

var (
	errApplicationNotFound = newError(ErrNotFound, "Application not found")
	errAlreadyApproved     = newError(ErrConflict, "Application already approved")
)

func (s *applicationService) Submit(ctx context.Context, req *request.VendorApplicationRequest) (*response.ApplicationCreated, error) {
	clearBlank(&req.Phone, &req.Description, &req.PortfolioURL)
	if err := validate(req, "Name, email, category, and business name are required"); err != nil {
		return nil, err
	}

	app := &entity.VendorApplication{
		Base:            entity.NewBase(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           blankToNil(req.Phone),
		Category:        req.Category,
		BusinessName:    req.BusinessName,
		Description:     blankToNil(req.Description),
		ExperienceYears: req.ExperienceYears,
		PortfolioURL:    blankToNil(req.PortfolioURL),
		Status:          entity.ApplicationPending,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info("Vendor application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("business_name", app.BusinessName))

	return &response.ApplicationCreated{
		Message:       "Vendor application submitted successfully! We'll review and get back to you soon.",
		ApplicationID: app.ID.String(),
	}, nil
}

func (s *applicationService) List(ctx context.Context) ([]response.ApplicationResponse, error) {
	apps, err := s.appRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.ApplicationsToResponse(apps), nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, applicationID uuid.UUID, req *request.ApplicationStatusRequest) error {
	if err := validate(req, "Status is required"); err != nil {
		return err
	}

	err := s.appRepo.UpdateStatus(ctx, applicationID, entity.ApplicationStatus(req.Status), blankToNil(req.AdminNotes))
	return mapApplicationError(err)
}

func (s *applicationService) Approve(ctx context.Context, applicationID uuid.UUID, req *request.ApproveApplicationRequest) (*response.VendorCreated, error) {
	vendor, err := s.appRepo.Approve(ctx, applicationID, blankToNil(req.AdminNotes))
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyApproved) {
			s.log.Warn("Repeated approval refused", zap.String("application_id", applicationID.String()))
		}
		return nil, mapApplicationError(err)
	}

	return &response.VendorCreated{
		Message:  "Application approved and vendor created successfully",
		VendorID: vendor.ID.String(),
	}, nil
}

func mapApplicationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return errApplicationNotFound
	case errors.Is(err, repository.ErrAlreadyApproved):
		return errAlreadyApproved
	default:
		return err
	}
}
