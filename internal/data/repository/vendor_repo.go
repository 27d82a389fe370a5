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

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	// FindAll lists by rating, best first. An empty category matches every vendor.
	FindAll(ctx context.Context, category string) ([]*entity.Vendor, error)
	// FindAllNewest lists by creation time, newest first.
	FindAllNewest(ctx context.Context) ([]*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

const vendorColumns = `id, name, category, contact_info, price_range, rating, created_at`

func (vr *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	if err := insertVendor(ctx, vr.db, vendor); err != nil {
		vr.log.Error("Failed to create vendor", zap.Error(err), zap.String("name", vendor.Name))
		return fmt.Errorf("create vendor %s: %w", vendor.Name, err)
	}
	return nil
}

// insertVendor is shared with the approval transaction.
func insertVendor(ctx context.Context, db execer, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Category,
		vendor.ContactInfo,
		vendor.PriceRange,
		vendor.Rating,
		vendor.CreatedAt,
	)
	return err
}

func (vr *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`

	vendor, err := scanVendor(vr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		vr.log.Error("Failed to find vendor", zap.Error(err), zap.String("vendor_id", id.String()))
		return nil, fmt.Errorf("find vendor %s: %w", id, err)
	}

	return vendor, nil
}

func (vr *vendorRepository) FindAll(ctx context.Context, category string) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY rating DESC`

	return vr.list(ctx, query, args...)
}

func (vr *vendorRepository) FindAllNewest(ctx context.Context) ([]*entity.Vendor, error) {
	return vr.list(ctx, `SELECT `+vendorColumns+` FROM vendors ORDER BY created_at DESC`)
}

func (vr *vendorRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Vendor, error) {
	rows, err := vr.db.Query(ctx, query, args...)
	if err != nil {
		vr.log.Error("Failed to list vendors", zap.Error(err))
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]*entity.Vendor, 0)
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			vr.log.Error("Failed to scan vendor row", zap.Error(err))
			return nil, fmt.Errorf("scan vendor row: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		vr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate vendor rows: %w", err)
	}

	return vendors, nil
}

func (vr *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, category = $3, contact_info = $4, price_range = $5, rating = $6
		WHERE id = $1
	`

	result, err := vr.db.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Category,
		vendor.ContactInfo,
		vendor.PriceRange,
		vendor.Rating,
	)
	if err != nil {
		vr.log.Error("Failed to update vendor", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return fmt.Errorf("update vendor %s: %w", vendor.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s: %w", vendor.ID, ErrNotFound)
	}

	return nil
}

// Delete is a hard delete. Bookings that reference the vendor stay behind.
func (vr *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := vr.db.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		vr.log.Error("Failed to delete vendor", zap.Error(err), zap.String("vendor_id", id.String()))
		return fmt.Errorf("delete vendor %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s: %w", id, ErrNotFound)
	}

	vr.log.Info("Vendor deleted", zap.String("vendor_id", id.String()))
	return nil
}

func (vr *vendorRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := vr.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&count); err != nil {
		vr.log.Error("Database error counting vendors", zap.Error(err))
		return 0, fmt.Errorf("count all vendors: %w", err)
	}
	return count, nil
}

func scanVendor(row scanner) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := row.Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Category,
		&vendor.ContactInfo,
		&vendor.PriceRange,
		&vendor.Rating,
		&vendor.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}
