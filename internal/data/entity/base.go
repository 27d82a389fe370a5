package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is shared by every table: all rows are immutable-id, created-once.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

func NewBase() Base {
	return Base{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}
