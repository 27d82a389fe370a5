//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// setupTestDB starts PostgreSQL, applies the schema and returns the repositories.
func setupTestDB(t *testing.T) *repository.Repository {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("wedding"),
		postgres.WithUsername("wedding"),
		postgres.WithPassword("wedding"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(ctx, connStr, 4)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, database.Migrate(ctx, db))
	// a second run must be a no-op
	require.NoError(t, database.Migrate(ctx, db))

	return repository.NewRepository(db, zap.NewNop())
}

func newUser(t *testing.T, repo *repository.Repository, email string) *entity.User {
	t.Helper()
	u := &entity.User{Base: entity.NewBase(), Name: "Sam", Email: email, PasswordHash: "x"}
	require.NoError(t, repo.User.Create(context.Background(), u))
	return u
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestIntegration_Repositories(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	t.Run("duplicate email", func(t *testing.T) {
		newUser(t, repo, "dup@example.com")
		err := repo.User.Create(ctx, &entity.User{Base: entity.NewBase(), Name: "Other", Email: "dup@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("user and admin namespaces are independent", func(t *testing.T) {
		newUser(t, repo, "shared@example.com")
		err := repo.Admin.Create(ctx, &entity.AdminUser{
			Base: entity.NewBase(), Name: "Admin", Email: "shared@example.com", PasswordHash: "x", Role: entity.RoleAdmin,
		})
		assert.NoError(t, err)
	})

	t.Run("events are owner scoped", func(t *testing.T) {
		a := newUser(t, repo, "a@example.com")
		b := newUser(t, repo, "b@example.com")

		late := &entity.WeddingEvent{Base: entity.NewBase(), UserID: a.ID, EventName: "Reception", EventDate: date("2026-09-02"), Status: entity.EventActive}
		early := &entity.WeddingEvent{Base: entity.NewBase(), UserID: a.ID, EventName: "Ceremony", EventDate: date("2026-09-01"), Status: entity.EventActive}
		require.NoError(t, repo.Event.Create(ctx, late))
		require.NoError(t, repo.Event.Create(ctx, early))

		events, err := repo.Event.FindAllByUser(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Ceremony", events[0].EventName)

		found, err := repo.Event.FindByIDForUser(ctx, early.ID, b.ID)
		require.NoError(t, err)
		assert.Nil(t, found)

		assert.ErrorIs(t, repo.Event.CancelForUser(ctx, early.ID, b.ID), repository.ErrNotFound)
		assert.ErrorIs(t, repo.Event.DeleteForUser(ctx, early.ID, b.ID), repository.ErrNotFound)

		require.NoError(t, repo.Event.CancelForUser(ctx, early.ID, a.ID))
		require.NoError(t, repo.Event.CancelForUser(ctx, early.ID, a.ID))

		found, err = repo.Event.FindByIDForUser(ctx, early.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EventCancelled, found.Status)
	})

	t.Run("deleted vendor drops out of booking listings", func(t *testing.T) {
		u := newUser(t, repo, "booker@example.com")
		v := &entity.Vendor{Base: entity.NewBase(), Name: "Blissful Blooms Florist", Category: "Florist", Rating: 4.7}
		require.NoError(t, repo.Vendor.Create(ctx, v))

		b := &entity.VendorBooking{Base: entity.NewBase(), UserID: u.ID, VendorID: v.ID, BookingDate: date("2026-09-01"), Status: entity.BookingPending}
		require.NoError(t, repo.Booking.Create(ctx, b))

		listed, err := repo.Booking.FindAllByUser(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "Blissful Blooms Florist", listed[0].VendorName)

		require.NoError(t, repo.Vendor.Delete(ctx, v.ID))

		listed, err = repo.Booking.FindAllByUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)

		total, err := repo.Booking.CountAll(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(1))
	})

	t.Run("approval is transactional and one-way", func(t *testing.T) {
		phone := "555-0100"
		app := &entity.VendorApplication{
			Base: entity.NewBase(), Name: "Jo", Email: "jo@example.com", Phone: &phone,
			Category: "Catering", BusinessName: "Jo's Kitchen", Status: entity.ApplicationPending,
		}
		require.NoError(t, repo.Application.Create(ctx, app))

		before, err := repo.Vendor.CountAll(ctx)
		require.NoError(t, err)

		vendor, err := repo.Application.Approve(ctx, app.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "Jo's Kitchen", vendor.Name)
		assert.Equal(t, "Catering", vendor.Category)
		assert.Equal(t, "Email: jo@example.com, Phone: 555-0100", *vendor.ContactInfo)

		_, err = repo.Application.Approve(ctx, app.ID, nil)
		assert.ErrorIs(t, err, repository.ErrAlreadyApproved)

		err = repo.Application.UpdateStatus(ctx, app.ID, entity.ApplicationRejected, nil)
		assert.ErrorIs(t, err, repository.ErrAlreadyApproved)

		after, err := repo.Vendor.CountAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)

		_, err = repo.Application.Approve(ctx, uuid.New(), nil)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("message counts by status", func(t *testing.T) {
		for i, status := range []entity.MessageStatus{entity.MessageUnread, entity.MessageUnread, entity.MessageRead} {
			m := &entity.ContactMessage{Base: entity.NewBase(), Name: "N", Email: "n@example.com", Message: "hello", Status: status}
			m.CreatedAt = m.CreatedAt.Add(time.Duration(i) * time.Second)
			require.NoError(t, repo.Message.Create(ctx, m))
		}

		unread, err := repo.Message.CountByStatus(ctx, entity.MessageUnread)
		require.NoError(t, err)
		assert.Equal(t, int64(2), unread)

		all, err := repo.Message.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, entity.MessageRead, all[0].Status)
	})
}
