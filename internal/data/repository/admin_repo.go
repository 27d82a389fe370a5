package repository

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (ar *adminRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, name, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := ar.db.Exec(ctx, query,
		admin.ID,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create admin %s: %w", admin.Email, ErrDuplicate)
	}
	if err != nil {
		ar.log.Error("Failed to create admin", zap.Error(err), zap.String("email", admin.Email))
		return fmt.Errorf("create admin %s: %w", admin.Email, err)
	}

	return nil
}

func (ar *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := `
		SELECT id, name, email, password, role, created_at
		FROM admin_users
		WHERE email = $1
	`

	var admin entity.AdminUser
	err := ar.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find admin by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find admin by email %s: %w", email, err)
	}

	return &admin, nil
}
