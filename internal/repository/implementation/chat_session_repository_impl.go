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

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	modelSession, err := r.mapper.ToModel(session)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(modelSession).Error; err != nil {
		return err
	}
	created, err := r.mapper.ToEntity(modelSession)
	if err != nil {
		return err
	}
	*session = *created
	return nil
}

func (r *ChatSessionRepositoryImpl) Update(ctx context.Context, session *entity.ChatSession) error {
	modelSession, err := r.mapper.ToModel(session)
	if err != nil {
		return err
	}
	// Save rewrites the whole row, messages array included. No version
	// check: concurrent writers to one session are last-write-wins.
	return r.db.WithContext(ctx).Save(modelSession).Error
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChatSession{}).Error
}

func (r *ChatSessionRepositoryImpl) DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.ChatSession{}).Error
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var modelSession model.ChatSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSession).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSession)
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var modelSessions []*model.ChatSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSessions).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSessions)
}

func (r *ChatSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
