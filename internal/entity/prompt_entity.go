package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prompt is a reusable snippet of instruction text attached to a project.
// Active prompts are merged into the project's effective system prompt.
type Prompt struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	Name      string
	Content   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
