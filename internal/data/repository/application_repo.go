package repository

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *entity.VendorApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorApplication, error)
	FindAll(ctx context.Context) ([]*entity.VendorApplication, error)
	// UpdateStatus refuses to touch an approved application: it returns
	// ErrNotFound when no row matched at all and ErrAlreadyApproved otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus, notes *string) error
	// Approve marks the application approved and inserts the vendor it
	// describes in one transaction.
	Approve(ctx context.Context, id uuid.UUID, notes *string) (*entity.Vendor, error)
	CountByStatus(ctx context.Context, status entity.ApplicationStatus) (int64, error)
}

type applicationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewApplicationRepository(db database.PgxIface, log *zap.Logger) ApplicationRepository {
	return &applicationRepository{
		db:  db,
		log: log.With(zap.String("repository", "application")),
	}
}

const applicationColumns = `id, name, email, phone, category, business_name, description,
	experience_years, portfolio_url, status, admin_notes, created_at`

func (ar *applicationRepository) Create(ctx context.Context, app *entity.VendorApplication) error {
	query := `
		INSERT INTO vendor_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := ar.db.Exec(ctx, query,
		app.ID,
		app.Name,
		app.Email,
		app.Phone,
		app.Category,
		app.BusinessName,
		app.Description,
		app.ExperienceYears,
		app.PortfolioURL,
		app.Status,
		app.AdminNotes,
		app.CreatedAt,
	)
	if err != nil {
		ar.log.Error("Failed to create vendor application",
			zap.Error(err),
			zap.String("email", app.Email),
			zap.String("business_name", app.BusinessName),
		)
		return fmt.Errorf("create vendor application: %w", err)
	}

	return nil
}

func (ar *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM vendor_applications WHERE id = $1`

	app, err := scanApplication(ar.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find vendor application", zap.Error(err), zap.String("application_id", id.String()))
		return nil, fmt.Errorf("find vendor application %s: %w", id, err)
	}

	return app, nil
}

func (ar *applicationRepository) FindAll(ctx context.Context) ([]*entity.VendorApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM vendor_applications ORDER BY created_at DESC`

	rows, err := ar.db.Query(ctx, query)
	if err != nil {
		ar.log.Error("Failed to list vendor applications", zap.Error(err))
		return nil, fmt.Errorf("list vendor applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*entity.VendorApplication, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			ar.log.Error("Failed to scan vendor application row", zap.Error(err))
			return nil, fmt.Errorf("scan vendor application row: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		ar.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate vendor application rows: %w", err)
	}

	return apps, nil
}

func (ar *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus, notes *string) error {
	query := `
		UPDATE vendor_applications
		SET status = $2, admin_notes = $3
		WHERE id = $1 AND status <> 'approved'
	`

	result, err := ar.db.Exec(ctx, query, id, status, notes)
	if err != nil {
		ar.log.Error("Failed to update vendor application",
			zap.Error(err),
			zap.String("application_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update vendor application %s: %w", id, err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: tell a missing row from an approved one.
	existing, err := ar.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("vendor application %s: %w", id, ErrNotFound)
	}
	return fmt.Errorf("vendor application %s: %w", id, ErrAlreadyApproved)
}

func (ar *applicationRepository) Approve(ctx context.Context, id uuid.UUID, notes *string) (*entity.Vendor, error) {
	tx, err := ar.db.Begin(ctx)
	if err != nil {
		ar.log.Error("Failed to begin approval", zap.Error(err), zap.String("application_id", id.String()))
		return nil, fmt.Errorf("begin approval %s: %w", id, err)
	}
	defer tx.Rollback(ctx)

	// Row lock serialises concurrent approvals of the same application.
	query := `SELECT ` + applicationColumns + ` FROM vendor_applications WHERE id = $1 FOR UPDATE`
	app, err := scanApplication(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("vendor application %s: %w", id, ErrNotFound)
	}
	if err != nil {
		ar.log.Error("Failed to lock vendor application", zap.Error(err), zap.String("application_id", id.String()))
		return nil, fmt.Errorf("lock vendor application %s: %w", id, err)
	}

	if app.Status == entity.ApplicationApproved {
		return nil, fmt.Errorf("vendor application %s: %w", id, ErrAlreadyApproved)
	}

	_, err = tx.Exec(ctx,
		`UPDATE vendor_applications SET status = $2, admin_notes = $3 WHERE id = $1`,
		id, entity.ApplicationApproved, notes)
	if err != nil {
		ar.log.Error("Failed to mark application approved", zap.Error(err), zap.String("application_id", id.String()))
		return nil, fmt.Errorf("approve vendor application %s: %w", id, err)
	}

	vendor := app.ToVendor()
	if err := insertVendor(ctx, tx, vendor); err != nil {
		ar.log.Error("Failed to create vendor from application", zap.Error(err), zap.String("application_id", id.String()))
		return nil, fmt.Errorf("create vendor from application %s: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		ar.log.Error("Failed to commit approval", zap.Error(err), zap.String("application_id", id.String()))
		return nil, fmt.Errorf("commit approval %s: %w", id, err)
	}

	ar.log.Info("Vendor application approved",
		zap.String("application_id", id.String()),
		zap.String("vendor_id", vendor.ID.String()),
	)
	return vendor, nil
}

func (ar *applicationRepository) CountByStatus(ctx context.Context, status entity.ApplicationStatus) (int64, error) {
	var count int64
	err := ar.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendor_applications WHERE status = $1`, status).Scan(&count)
	if err != nil {
		ar.log.Error("Database error counting applications", zap.Error(err), zap.String("status", string(status)))
		return 0, fmt.Errorf("count %s applications: %w", status, err)
	}
	return count, nil
}

func scanApplication(row scanner) (*entity.VendorApplication, error) {
	var app entity.VendorApplication
	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Email,
		&app.Phone,
		&app.Category,
		&app.BusinessName,
		&app.Description,
		&app.ExperienceYears,
		&app.PortfolioURL,
		&app.Status,
		&app.AdminNotes,
		&app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}
