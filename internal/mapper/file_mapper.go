package mapper

import (
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/model"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.FileRecord) *entity.FileRecord {
	if f == nil {
		return nil
	}
	return &entity.FileRecord{
		Id:             f.Id,
		ProjectId:      f.ProjectId,
		Filename:       f.Filename,
		ExternalFileId: f.ExternalFileId,
		Purpose:        f.Purpose,
		SizeBytes:      f.SizeBytes,
		UploadedAt:     f.UploadedAt,
	}
}

func (m *FileMapper) ToModel(f *entity.FileRecord) *model.FileRecord {
	if f == nil {
		return nil
	}
	return &model.FileRecord{
		Id:             f.Id,
		ProjectId:      f.ProjectId,
		Filename:       f.Filename,
		ExternalFileId: f.ExternalFileId,
		Purpose:        f.Purpose,
		SizeBytes:      f.SizeBytes,
		UploadedAt:     f.UploadedAt,
	}
}

func (m *FileMapper) ToEntities(files []*model.FileRecord) []*entity.FileRecord {
	result := make([]*entity.FileRecord, 0, len(files))
	for _, f := range files {
		result = append(result, m.ToEntity(f))
	}
	return result
}
