package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"
	"wedding-planner/pkg/auth"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.AdminAuthResponse, error)
}

type authService struct {
	repo       *repository.Repository // users and admin_users
	issuer     *auth.TokenIssuer
	bcryptCost int
	log        *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *auth.TokenIssuer,
	bcryptCost int,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:       repo,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		log:        log.With(zap.String("service", "auth")),
	}
}

var errInvalidCredentials = newError(ErrUnauthorized, "Invalid credentials")

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if err := validate(req, "All fields are required"); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}
	req.Email = strings.TrimSpace(req.Email)

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, newError(ErrAlreadyExists, "User already exists")
	}

	hashed, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Base:         entity.NewBase(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrAlreadyExists, "User already exists")
		}
		return nil, err
	}

	token, _, err := s.issuer.IssueUser(user.ID, user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    response.UserToPublic(user),
	}, nil
}

// Login does not reveal whether the email or the password was wrong.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validate(req, "Email and password are required"); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Failed login", zap.String("email", req.Email))
		return nil, errInvalidCredentials
	}

	token, _, err := s.issuer.IssueUser(user.ID, user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    response.UserToPublic(user),
	}, nil
}

func (s *authService) AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.AdminAuthResponse, error) {
	if err := validate(req, "Email and password are required"); err != nil {
		return nil, err
	}

	admin, err := s.repo.Admin.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		s.log.Warn("Failed admin login", zap.String("email", req.Email))
		return nil, errInvalidCredentials
	}

	token, _, err := s.issuer.IssueAdmin(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		s.log.Error("Failed to issue admin token", zap.Error(err), zap.String("admin_id", admin.ID.String()))
		return nil, err
	}

	s.log.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))

	return &response.AdminAuthResponse{
		Message: "Admin login successful",
		Token:   token,
		Admin:   response.AdminToPublic(admin),
	}, nil
}
