package usecase

import (
	"wedding-planner/internal/data/repository"
	"wedding-planner/pkg/auth"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Event       EventService
	Vendor      VendorService
	Booking     BookingService
	Message     MessageService
	Application ApplicationService
	Stats       StatsService
	Seed        SeedService
}

func NewService(repo *repository.Repository, issuer *auth.TokenIssuer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, issuer, config.Security.BcryptCost, log),
		User:        NewUserService(repo.User, log),
		Event:       NewEventService(repo.Event, log),
		Vendor:      NewVendorService(repo.Vendor, log),
		Booking:     NewBookingService(repo, log),
		Message:     NewMessageService(repo.Message, log),
		Application: NewApplicationService(repo.Application, log),
		Stats:       NewStatsService(repo, log),
		Seed:        NewSeedService(repo, config.Security.BcryptCost, log),
	}
}
