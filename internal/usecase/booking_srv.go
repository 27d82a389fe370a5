package usecase

import (
	"context"
	"time"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingCreated, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	ListAll(ctx context.Context) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *request.BookingStatusRequest) error
}

type bookingService struct {
	repo *repository.Repository // bookings and vendors
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingCreated, error) {
	if err := validate(req, "Vendor ID and booking date are required"); err != nil {
		return nil, err
	}

	vendorID := uuid.MustParse(req.VendorID)
	date, _ := time.Parse(response.DateLayout, req.BookingDate)

	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, errVendorNotFound
	}

	booking := &entity.VendorBooking{
		Base:        entity.NewBase(),
		UserID:      userID,
		VendorID:    vendorID,
		BookingDate: date,
		Status:      entity.BookingPending,
		Notes:       blankToNil(req.Notes),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("vendor_id", vendorID.String()))

	return &response.BookingCreated{
		Message:   "Booking created successfully",
		BookingID: booking.ID.String(),
	}, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *request.BookingStatusRequest) error {
	if err := validate(req, "Status is required"); err != nil {
		return err
	}

	err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		return mapNotFound(err, newError(ErrNotFound, "Booking not found"))
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", req.Status))
	return nil
}
