package dto

import (
	"time"

	"github.com/google/uuid"
)

type FileResponse struct {
	Id             uuid.UUID `json:"id"`
	ProjectId      uuid.UUID `json:"project_id"`
	Filename       string    `json:"filename"`
	ExternalFileId string    `json:"external_file_id"`
	Purpose        string    `json:"purpose"`
	SizeBytes      int64     `json:"size_bytes"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

type DeleteFileResponse struct {
	Id uuid.UUID `json:"id"`
}
