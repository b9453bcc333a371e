package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePromptRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Content  string `json:"content" validate:"required,min=1"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdatePromptRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Content  *string `json:"content,omitempty" validate:"omitempty,min=1"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type PromptResponse struct {
	Id        uuid.UUID  `json:"id"`
	ProjectId uuid.UUID  `json:"project_id"`
	Name      string     `json:"name"`
	Content   string     `json:"content"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
