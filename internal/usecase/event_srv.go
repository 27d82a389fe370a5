package usecase

import (
	"context"
	"errors"
	"time"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventService operates only on the caller's own events. An event owned by
// another user is reported as not found.
type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.EventRequest) (*response.EventCreated, error)
	List(ctx context.Context, userID uuid.UUID) ([]response.EventResponse, error)
	Get(ctx context.Context, userID, eventID uuid.UUID) (*response.EventResponse, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, req *request.EventRequest) error
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
	Cancel(ctx context.Context, userID, eventID uuid.UUID) error
}

type eventService struct {
	eventRepo repository.EventRepository
	log       *zap.Logger
}

func NewEventService(eventRepo repository.EventRepository, log *zap.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		log:       log.With(zap.String("service", "event")),
	}
}

var errEventNotFound = newError(ErrNotFound, "Event not found")

const eventRequiredMsg = "Event name and date are required"

func (s *eventService) Create(ctx context.Context, userID uuid.UUID, req *request.EventRequest) (*response.EventCreated, error) {
	clearBlank(&req.EventTime, &req.Location, &req.Description)
	if err := validate(req, eventRequiredMsg); err != nil {
		return nil, err
	}

	event := &entity.WeddingEvent{
		Base:   entity.NewBase(),
		UserID: userID,
		Status: entity.EventActive,
	}
	applyEventRequest(event, req)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("user_id", userID.String()))

	return &response.EventCreated{
		Message: "Event created successfully",
		EventID: event.ID.String(),
	}, nil
}

func (s *eventService) List(ctx context.Context, userID uuid.UUID) ([]response.EventResponse, error) {
	events, err := s.eventRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.EventsToResponse(events), nil
}

func (s *eventService) Get(ctx context.Context, userID, eventID uuid.UUID) (*response.EventResponse, error) {
	event, err := s.eventRepo.FindByIDForUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, errEventNotFound
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) Update(ctx context.Context, userID, eventID uuid.UUID, req *request.EventRequest) error {
	clearBlank(&req.EventTime, &req.Location, &req.Description)
	if err := validate(req, eventRequiredMsg); err != nil {
		return err
	}

	event := &entity.WeddingEvent{
		Base:   entity.Base{ID: eventID},
		UserID: userID,
	}
	applyEventRequest(event, req)

	return mapNotFound(s.eventRepo.UpdateForUser(ctx, event), errEventNotFound)
}

func (s *eventService) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	return mapNotFound(s.eventRepo.DeleteForUser(ctx, eventID, userID), errEventNotFound)
}

// Cancel is idempotent; cancelling a cancelled event succeeds.
func (s *eventService) Cancel(ctx context.Context, userID, eventID uuid.UUID) error {
	return mapNotFound(s.eventRepo.CancelForUser(ctx, eventID, userID), errEventNotFound)
}

// applyEventRequest copies a validated request onto event.
func applyEventRequest(event *entity.WeddingEvent, req *request.EventRequest) {
	// validated as 2006-01-02 already
	date, _ := time.Parse(response.DateLayout, req.EventDate)

	event.EventName = req.EventName
	event.EventDate = date
	event.EventTime = blankToNil(req.EventTime)
	event.Location = blankToNil(req.Location)
	event.Description = blankToNil(req.Description)
}

// mapNotFound turns a repository miss into the client-facing notFound error.
func mapNotFound(err error, notFound *Error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}

// clearBlank drops optional fields sent as "" so format rules only see real values.
func clearBlank(fields ...**string) {
	for _, f := range fields {
		*f = blankToNil(*f)
	}
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
