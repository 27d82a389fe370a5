package entity

type MessageStatus string

const (
	MessageUnread  MessageStatus = "unread"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

type ContactMessage struct {
	Base
	Name    string        `db:"name"`
	Email   string        `db:"email"`
	Subject *string       `db:"subject"`
	Message string        `db:"message"`
	Status  MessageStatus `db:"status"`
}
