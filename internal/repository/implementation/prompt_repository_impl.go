package implementation

import (
	"context"
	"errors"

	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/mapper"
	"chatbot-platform-be/internal/model"
	"chatbot-platform-be/internal/repository/contract"
	"chatbot-platform-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptMapper
}

func NewPromptRepository(db *gorm.DB) contract.PromptRepository {
	return &PromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptMapper(),
	}
}

func (r *PromptRepositoryImpl) Create(ctx context.Context, prompt *entity.Prompt) error {
	modelPrompt := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Create(modelPrompt).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(modelPrompt)
	return nil
}

func (r *PromptRepositoryImpl) Update(ctx context.Context, prompt *entity.Prompt) error {
	modelPrompt := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Save(modelPrompt).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(modelPrompt)
	return nil
}

func (r *PromptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Prompt{}).Error
}

func (r *PromptRepositoryImpl) DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.Prompt{}).Error
}

func (r *PromptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	var modelPrompt model.Prompt
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPrompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPrompt), nil
}

func (r *PromptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	var modelPrompts []*model.Prompt
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPrompts).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelPrompts), nil
}

func (r *PromptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Prompt{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
