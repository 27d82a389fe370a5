package repository

import (
	"context"
	"errors"

	"wedding-planner/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by mutations whose WHERE clause matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("record already exists")
	// ErrAlreadyApproved guards the one-way approval of a vendor application.
	ErrAlreadyApproved = errors.New("application already approved")
)

type Repository struct {
	User        UserRepository
	Admin       AdminRepository
	Event       EventRepository
	Vendor      VendorRepository
	Booking     BookingRepository
	Message     MessageRepository
	Application ApplicationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Admin:       NewAdminRepository(db, log),
		Event:       NewEventRepository(db, log),
		Vendor:      NewVendorRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Message:     NewMessageRepository(db, log),
		Application: NewApplicationRepository(db, log),
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by both the pool and pgx.Tx
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
