package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"chatbot-platform-be/internal/constant"
	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/repository/specification"
	"chatbot-platform-be/internal/repository/unitofwork"
	"chatbot-platform-be/pkg/filestore"

	"github.com/google/uuid"
)

type IFileService interface {
	Upload(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, filename string, content io.Reader) (*dto.FileResponse, error)
	List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.FileResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) (*dto.DeleteFileResponse, error)
}

type fileService struct {
	uowFactory unitofwork.RepositoryFactory
	store      filestore.Store
}

func NewFileService(uowFactory unitofwork.RepositoryFactory, store filestore.Store) IFileService {
	return &fileService{
		uowFactory: uowFactory,
		store:      store,
	}
}

func toFileResponse(file *entity.FileRecord) *dto.FileResponse {
	return &dto.FileResponse{
		Id:             file.Id,
		ProjectId:      file.ProjectId,
		Filename:       file.Filename,
		ExternalFileId: file.ExternalFileId,
		Purpose:        file.Purpose,
		SizeBytes:      file.SizeBytes,
		UploadedAt:     file.UploadedAt,
	}
}

func (s *fileService) Upload(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, filename string, content io.Reader) (*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.New(apperror.ErrNotFound, "Project not found")
	}

	uploaded, err := s.store.Upload(ctx, filename, content, constant.FilePurposeAssistants)
	if err != nil {
		return nil, apperror.Newf(apperror.ErrServiceUnavailable, "file upload failed: %v", err)
	}

	file := entity.FileRecord{
		Id:             uuid.New(),
		ProjectId:      projectId,
		Filename:       filename,
		ExternalFileId: uploaded.ExternalId,
		Purpose:        uploaded.Purpose,
		SizeBytes:      uploaded.SizeBytes,
		UploadedAt:     time.Now(),
	}

	if err := uow.FileRepository().Create(ctx, &file); err != nil {
		return nil, err
	}

	return toFileResponse(&file), nil
}

func (s *fileService) List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.New(apperror.ErrNotFound, "Project not found")
	}

	files, err := uow.FileRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FileResponse, len(files))
	for i, file := range files {
		responses[i] = toFileResponse(file)
	}
	return responses, nil
}

func (s *fileService) Delete(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) (*dto.DeleteFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	file, err := uow.FileRepository().FindOne(ctx, specification.ByID{ID: fileId})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperror.New(apperror.ErrNotFound, "File not found")
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: file.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.New(apperror.ErrNotFound, "Project not found")
	}
	if project.UserId != userId {
		return nil, apperror.New(apperror.ErrForbidden, "Not authorized to access this file")
	}

	// The local record is authoritative. A failed host-side delete only
	// leaks a remote object, so it is logged and swallowed.
	if err := s.store.Delete(ctx, file.ExternalFileId); err != nil {
		fmt.Printf("[WARN] Failed to delete external file %s: %v\n", file.ExternalFileId, err)
	}

	if err := uow.FileRepository().Delete(ctx, file.Id); err != nil {
		return nil, err
	}

	return &dto.DeleteFileResponse{Id: file.Id}, nil
}
