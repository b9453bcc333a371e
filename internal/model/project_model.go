package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index;index:idx_projects_user_created,priority:1"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  *string   `gorm:"type:varchar(500)"`
	SystemPrompt string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_projects_user_created,priority:2,sort:desc"`
	// Stays null until the first update; the service sets it explicitly.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (Project) TableName() string {
	return "projects"
}
