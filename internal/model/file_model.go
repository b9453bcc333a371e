package model

import (
	"time"

	"github.com/google/uuid"
)

type FileRecord struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename       string    `gorm:"type:varchar(255);not null"`
	ExternalFileId string    `gorm:"type:varchar(255);not null"`
	Purpose        string    `gorm:"type:varchar(50);not null"`
	SizeBytes      int64     `gorm:"not null;default:0"`
	UploadedAt     time.Time `gorm:"autoCreateTime"`
}

func (FileRecord) TableName() string {
	return "files"
}
