package request

type ContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message" validate:"required"`
}

type MessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read replied"`
}
