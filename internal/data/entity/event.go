package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventActive    EventStatus = "active"
	EventCancelled EventStatus = "cancelled"
)

type WeddingEvent struct {
	Base
	UserID      uuid.UUID   `db:"user_id"`
	EventName   string      `db:"event_name"`
	EventDate   time.Time   `db:"event_date"`
	EventTime   *string     `db:"event_time"`
	Location    *string     `db:"location"`
	Description *string     `db:"description"`
	Status      EventStatus `db:"status"`
}
