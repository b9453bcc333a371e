package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord references bytes stored at the external file host; only the
// metadata lives locally.
type FileRecord struct {
	Id             uuid.UUID
	ProjectId      uuid.UUID
	Filename       string
	ExternalFileId string
	Purpose        string
	SizeBytes      int64
	UploadedAt     time.Time
}
