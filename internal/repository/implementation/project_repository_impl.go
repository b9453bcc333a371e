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

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) contract.ProjectRepository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entity.Project) error {
	modelProject := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Create(modelProject).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(modelProject)
	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *entity.Project) error {
	modelProject := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Save(modelProject).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(modelProject)
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{}).Error
}

func (r *ProjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	var modelProject model.Project
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelProject), nil
}

func (r *ProjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	var modelProjects []*model.Project
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProjects).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelProjects), nil
}

func (r *ProjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Project{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
