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

// EventRepository scopes every read and write of a single event to its owner.
// A row owned by someone else is indistinguishable from a missing one.
type EventRepository interface {
	Create(ctx context.Context, event *entity.WeddingEvent) error
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WeddingEvent, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.WeddingEvent, error)
	UpdateForUser(ctx context.Context, event *entity.WeddingEvent) error
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
	CancelForUser(ctx context.Context, id, userID uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, user_id, event_name, event_date, event_time, location, description, status, created_at`

func (er *eventRepository) Create(ctx context.Context, event *entity.WeddingEvent) error {
	query := `
		INSERT INTO wedding_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := er.db.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.EventName,
		event.EventDate,
		event.EventTime,
		event.Location,
		event.Description,
		event.Status,
		event.CreatedAt,
	)
	if err != nil {
		er.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("user_id", event.UserID.String()),
		)
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (er *eventRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WeddingEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM wedding_events
		WHERE user_id = $1
		ORDER BY event_date ASC
	`

	rows, err := er.db.Query(ctx, query, userID)
	if err != nil {
		er.log.Error("Failed to list events", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find events for user %s: %w", userID, err)
	}
	defer rows.Close()

	events := make([]*entity.WeddingEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			er.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

func (er *eventRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.WeddingEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM wedding_events
		WHERE id = $1 AND user_id = $2
	`

	event, err := scanEvent(er.db.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", id.String()))
		return nil, fmt.Errorf("find event %s: %w", id, err)
	}

	return event, nil
}

func (er *eventRepository) UpdateForUser(ctx context.Context, event *entity.WeddingEvent) error {
	query := `
		UPDATE wedding_events
		SET event_name = $3, event_date = $4, event_time = $5,
		    location = $6, description = $7
		WHERE id = $1 AND user_id = $2
	`

	result, err := er.db.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.EventName,
		event.EventDate,
		event.EventTime,
		event.Location,
		event.Description,
	)
	if err != nil {
		er.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return fmt.Errorf("update event %s: %w", event.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", event.ID, ErrNotFound)
	}

	return nil
}

func (er *eventRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	result, err := er.db.Exec(ctx,
		`DELETE FROM wedding_events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		er.log.Error("Failed to delete event", zap.Error(err), zap.String("event_id", id.String()))
		return fmt.Errorf("delete event %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}

	er.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}

// CancelForUser is idempotent: an already-cancelled event still matches.
func (er *eventRepository) CancelForUser(ctx context.Context, id, userID uuid.UUID) error {
	result, err := er.db.Exec(ctx,
		`UPDATE wedding_events SET status = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, entity.EventCancelled)
	if err != nil {
		er.log.Error("Failed to cancel event", zap.Error(err), zap.String("event_id", id.String()))
		return fmt.Errorf("cancel event %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}

	return nil
}

func scanEvent(row scanner) (*entity.WeddingEvent, error) {
	var event entity.WeddingEvent
	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.EventName,
		&event.EventDate,
		&event.EventTime,
		&event.Location,
		&event.Description,
		&event.Status,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
