package service

import (
	"context"
	"time"

	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/repository/specification"
	"chatbot-platform-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPromptService interface {
	Create(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.CreatePromptRequest) (*dto.PromptResponse, error)
	List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.PromptResponse, error)
	Update(ctx context.Context, userId uuid.UUID, promptId uuid.UUID, req *dto.UpdatePromptRequest) (*dto.PromptResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, promptId uuid.UUID) error
}

type promptService struct {
	uowFactory unitofwork.RepositoryFactory
}

// promptListLimit caps the per-project prompt listing.
const promptListLimit = 100

func NewPromptService(uowFactory unitofwork.RepositoryFactory) IPromptService {
	return &promptService{uowFactory: uowFactory}
}

func toPromptResponse(prompt *entity.Prompt) *dto.PromptResponse {
	return &dto.PromptResponse{
		Id:        prompt.Id,
		ProjectId: prompt.ProjectId,
		Name:      prompt.Name,
		Content:   prompt.Content,
		IsActive:  prompt.IsActive,
		CreatedAt: prompt.CreatedAt,
		UpdatedAt: prompt.UpdatedAt,
	}
}

func (s *promptService) Create(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.CreatePromptRequest) (*dto.PromptResponse, error) {
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

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	prompt := entity.Prompt{
		Id:        uuid.New(),
		ProjectId: projectId,
		Name:      req.Name,
		Content:   req.Content,
		IsActive:  isActive,
		CreatedAt: time.Now(),
	}

	if err := uow.PromptRepository().Create(ctx, &prompt); err != nil {
		return nil, err
	}

	return toPromptResponse(&prompt), nil
}

func (s *promptService) List(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.PromptResponse, error) {
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

	prompts, err := uow.PromptRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: promptListLimit},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PromptResponse, len(prompts))
	for i, prompt := range prompts {
		responses[i] = toPromptResponse(prompt)
	}
	return responses, nil
}

// loadOwnedPrompt resolves a prompt id to an entity the caller may
// touch. A missing prompt is NotFound; a prompt under someone else's
// project is Forbidden, since the id itself proved valid.
func (s *promptService) loadOwnedPrompt(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, promptId uuid.UUID) (*entity.Prompt, error) {
	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: promptId})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, apperror.New(apperror.ErrNotFound, "Prompt not found")
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: prompt.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.New(apperror.ErrNotFound, "Project not found")
	}
	if project.UserId != userId {
		return nil, apperror.New(apperror.ErrForbidden, "Not authorized to access this prompt")
	}

	return prompt, nil
}

func (s *promptService) Update(ctx context.Context, userId uuid.UUID, promptId uuid.UUID, req *dto.UpdatePromptRequest) (*dto.PromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := s.loadOwnedPrompt(ctx, uow, userId, promptId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prompt.Name = *req.Name
	}
	if req.Content != nil {
		prompt.Content = *req.Content
	}
	if req.IsActive != nil {
		prompt.IsActive = *req.IsActive
	}
	now := time.Now()
	prompt.UpdatedAt = &now

	if err := uow.PromptRepository().Update(ctx, prompt); err != nil {
		return nil, err
	}

	return toPromptResponse(prompt), nil
}

func (s *promptService) Delete(ctx context.Context, userId uuid.UUID, promptId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := s.loadOwnedPrompt(ctx, uow, userId, promptId)
	if err != nil {
		return err
	}

	return uow.PromptRepository().Delete(ctx, prompt.Id)
}
