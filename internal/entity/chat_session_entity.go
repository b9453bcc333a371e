package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is immutable once appended; slice order is conversation
// order.
type ChatMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// ChatSession holds the full append-only message log of one conversation.
// Persistence replaces the message list wholesale on every exchange.
type ChatSession struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt *time.Time
}
