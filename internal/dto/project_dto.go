package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
}

type UpdateProjectRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	SystemPrompt *string `json:"system_prompt,omitempty"`
}

type ProjectResponse struct {
	Id           uuid.UUID  `json:"id"`
	UserId       uuid.UUID  `json:"user_id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	SystemPrompt string     `json:"system_prompt"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
