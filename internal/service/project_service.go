package service

import (
	"context"
	"fmt"
	"time"

	"chatbot-platform-be/internal/constant"
	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/logger"
	"chatbot-platform-be/internal/repository/specification"
	"chatbot-platform-be/internal/repository/unitofwork"
	"chatbot-platform-be/pkg/events"
	pkgNats "chatbot-platform-be/pkg/nats"

	"github.com/google/uuid"
)

type IProjectService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error)
	Get(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error)
	Update(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error
}

// projectListLimit caps the per-user project listing.
const projectListLimit = 100

type projectService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewProjectService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) IProjectService {
	return &projectService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

func toProjectResponse(project *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:           project.Id,
		UserId:       project.UserId,
		Name:         project.Name,
		Description:  project.Description,
		SystemPrompt: project.SystemPrompt,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = constant.DefaultSystemPrompt
	}

	project := entity.Project{
		Id:           uuid.New(),
		UserId:       userId,
		Name:         req.Name,
		Description:  req.Description,
		SystemPrompt: systemPrompt,
		CreatedAt:    time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, &project); err != nil {
		return nil, err
	}

	return toProjectResponse(&project), nil
}

func (s *projectService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: projectListLimit},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = toProjectResponse(project)
	}
	return responses, nil
}

func (s *projectService) Get(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error) {
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

	return toProjectResponse(project), nil
}

func (s *projectService) Update(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
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

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.SystemPrompt != nil {
		project.SystemPrompt = *req.SystemPrompt
	}
	now := time.Now()
	project.UpdatedAt = &now

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

// Delete removes the project and every record hanging off it. Children
// go first so a failed transaction never leaves orphans behind.
func (s *projectService) Delete(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if project == nil {
		return apperror.New(apperror.ErrNotFound, "Project not found")
	}

	tx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := tx.PromptRepository().DeleteByProjectId(ctx, projectId); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.ChatSessionRepository().DeleteByProjectId(ctx, projectId); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.FileRepository().DeleteByProjectId(ctx, projectId); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.ProjectRepository().Delete(ctx, projectId); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if s.sysLogger != nil {
		s.sysLogger.Info("project", "cascade delete complete", map[string]interface{}{
			"project_id": projectId.String(),
			"user_id":    userId.String(),
		})
	}

	if err := s.eventPublisher.Publish(ctx, events.NewProjectDeletedEvent(projectId.String(), userId.String())); err != nil {
		fmt.Printf("[WARN] Failed to publish PROJECT_DELETED event: %v\n", err)
	}

	return nil
}
