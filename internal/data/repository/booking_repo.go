package repository

import (
	"context"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingRepository listings inner-join vendors, so bookings whose vendor was
// deleted stay in the table but drop out of every listing.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.VendorBooking) error
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	FindAll(ctx context.Context) ([]*entity.BookingDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	CountAll(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (br *bookingRepository) Create(ctx context.Context, booking *entity.VendorBooking) error {
	query := `
		INSERT INTO vendor_bookings (id, user_id, vendor_id, booking_date, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.VendorID,
		booking.BookingDate,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
	)
	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("vendor_id", booking.VendorID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (br *bookingRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := `
		SELECT vb.id, vb.user_id, vb.vendor_id, vb.booking_date, vb.status, vb.notes, vb.created_at,
		       v.name, v.category, '', ''
		FROM vendor_bookings vb
		JOIN vendors v ON vb.vendor_id = v.id
		WHERE vb.user_id = $1
		ORDER BY vb.booking_date ASC
	`
	return br.list(ctx, query, userID)
}

func (br *bookingRepository) FindAll(ctx context.Context) ([]*entity.BookingDetail, error) {
	query := `
		SELECT vb.id, vb.user_id, vb.vendor_id, vb.booking_date, vb.status, vb.notes, vb.created_at,
		       v.name, v.category, u.name, u.email
		FROM vendor_bookings vb
		JOIN vendors v ON vb.vendor_id = v.id
		JOIN users u ON vb.user_id = u.id
		ORDER BY vb.created_at DESC
	`
	return br.list(ctx, query)
}

func (br *bookingRepository) list(ctx context.Context, query string, args ...any) ([]*entity.BookingDetail, error) {
	rows, err := br.db.Query(ctx, query, args...)
	if err != nil {
		br.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*entity.BookingDetail, 0)
	for rows.Next() {
		var b entity.BookingDetail
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.VendorID,
			&b.BookingDate,
			&b.Status,
			&b.Notes,
			&b.CreatedAt,
			&b.VendorName,
			&b.Category,
			&b.UserName,
			&b.UserEmail,
		)
		if err != nil {
			br.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		br.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// UpdateStatus moves freely between pending, approved and rejected; last write wins.
func (br *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	result, err := br.db.Exec(ctx, `UPDATE vendor_bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		br.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	return nil
}

func (br *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := br.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendor_bookings`).Scan(&count); err != nil {
		br.log.Error("Database error counting bookings", zap.Error(err))
		return 0, fmt.Errorf("count all bookings: %w", err)
	}
	return count, nil
}
