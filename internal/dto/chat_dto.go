package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message   string     `json:"message" validate:"required,min=1"`
	SessionId *uuid.UUID `json:"session_id,omitempty"`
}

type SendChatResponse struct {
	SessionId uuid.UUID      `json:"session_id"`
	ProjectId uuid.UUID      `json:"project_id"`
	Message   ChatMessageDTO `json:"message"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type ChatMessageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionSummaryResponse struct {
	Id           uuid.UUID  `json:"id"`
	MessageCount int        `json:"message_count"`
	Preview      string     `json:"preview"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type SessionDetailResponse struct {
	Id        uuid.UUID        `json:"id"`
	ProjectId uuid.UUID        `json:"project_id"`
	Messages  []ChatMessageDTO `json:"messages"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at"`
}
