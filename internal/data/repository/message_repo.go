package repository

import (
	"context"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	FindAll(ctx context.Context) ([]*entity.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus) error
	CountByStatus(ctx context.Context, status entity.MessageStatus) (int64, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (mr *messageRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := mr.db.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.Status,
		msg.CreatedAt,
	)
	if err != nil {
		mr.log.Error("Failed to create contact message", zap.Error(err), zap.String("email", msg.Email))
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (mr *messageRepository) FindAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, status, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := mr.db.Query(ctx, query)
	if err != nil {
		mr.log.Error("Failed to list contact messages", zap.Error(err))
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*entity.ContactMessage, 0)
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			mr.log.Error("Failed to scan contact message row", zap.Error(err))
			return nil, fmt.Errorf("scan contact message row: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate contact message rows: %w", err)
	}

	return messages, nil
}

func (mr *messageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus) error {
	result, err := mr.db.Exec(ctx, `UPDATE contact_messages SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		mr.log.Error("Failed to update message status", zap.Error(err), zap.String("message_id", id.String()))
		return fmt.Errorf("update message %s status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}

	return nil
}

func (mr *messageRepository) CountByStatus(ctx context.Context, status entity.MessageStatus) (int64, error) {
	var count int64
	err := mr.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE status = $1`, status).Scan(&count)
	if err != nil {
		mr.log.Error("Database error counting messages", zap.Error(err), zap.String("status", string(status)))
		return 0, fmt.Errorf("count %s messages: %w", status, err)
	}
	return count, nil
}
