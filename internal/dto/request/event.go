package request

// EventRequest is the body of both create and full update.
type EventRequest struct {
	EventName   string  `json:"event_name" validate:"required,max=200"`
	EventDate   string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime   *string `json:"event_time,omitempty" validate:"omitempty,datetime=15:04"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}
