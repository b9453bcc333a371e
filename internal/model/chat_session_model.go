package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatSession stores the whole conversation as one JSONB document; every
// exchange rewrites the messages array wholesale.
type ChatSession struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId uuid.UUID      `gorm:"type:uuid;not null;index;index:idx_chat_sessions_project_created,priority:1"`
	Messages  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_chat_sessions_project_created,priority:2,sort:desc"`
	UpdatedAt *time.Time     `gorm:"autoUpdateTime:false"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
