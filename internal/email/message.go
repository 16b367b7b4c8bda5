package email

import (
	"time"

	"github.com/google/uuid"
)

// Kind selects the template a message is rendered with
type Kind string

const (
	KindVerification  Kind = "verification"
	KindPasswordReset Kind = "password_reset"
)

// Message is the unit handed to a queue. It is JSON encoded on the Redis queue.
type Message struct {
	ID       uuid.UUID `json:"id"`
	Kind     Kind      `json:"kind"`
	To       string    `json:"to"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	QueuedAt time.Time `json:"queuedAt"`
}

func newMessage(kind Kind, to, name, code string) Message {
	return Message{
		ID:       uuid.New(),
		Kind:     kind,
		To:       to,
		Name:     name,
		Code:     code,
		QueuedAt: time.Now().UTC(),
	}
}
