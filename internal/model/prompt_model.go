package model

import (
	"time"

	"github.com/google/uuid"
)

type Prompt struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Content   string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (Prompt) TableName() string {
	return "prompts"
}
