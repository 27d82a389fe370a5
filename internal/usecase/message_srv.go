package usecase

import (
	"context"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageService interface {
	Submit(ctx context.Context, req *request.ContactRequest) (*response.MessageCreated, error)
	List(ctx context.Context) ([]response.MessageResponse, error)
	UpdateStatus(ctx context.Context, messageID uuid.UUID, req *request.MessageStatusRequest) error
}

type messageService struct {
	messageRepo repository.MessageRepository
	log         *zap.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, log *zap.Logger) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		log:         log.With(zap.String("service", "message")),
	}
}

func (s *messageService) Submit(ctx context.Context, req *request.ContactRequest) (*response.MessageCreated, error) {
	if err := validate(req, "Name, email, and message are required"); err != nil {
		return nil, err
	}

	msg := &entity.ContactMessage{
		Base:    entity.NewBase(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: blankToNil(req.Subject),
		Message: req.Message,
		Status:  entity.MessageUnread,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return &response.MessageCreated{
		Message:   "Message sent successfully! We'll get back to you soon.",
		MessageID: msg.ID.String(),
	}, nil
}

func (s *messageService) List(ctx context.Context) ([]response.MessageResponse, error) {
	messages, err := s.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.MessagesToResponse(messages), nil
}

func (s *messageService) UpdateStatus(ctx context.Context, messageID uuid.UUID, req *request.MessageStatusRequest) error {
	if err := validate(req, "Status is required"); err != nil {
		return err
	}

	err := s.messageRepo.UpdateStatus(ctx, messageID, entity.MessageStatus(req.Status))
	return mapNotFound(err, newError(ErrNotFound, "Message not found"))
}
