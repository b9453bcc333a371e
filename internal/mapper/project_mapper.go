package mapper

import (
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:           p.Id,
		UserId:       p.UserId,
		Name:         p.Name,
		Description:  p.Description,
		SystemPrompt: p.SystemPrompt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:           p.Id,
		UserId:       p.UserId,
		Name:         p.Name,
		Description:  p.Description,
		SystemPrompt: p.SystemPrompt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	result := make([]*entity.Project, 0, len(projects))
	for _, p := range projects {
		result = append(result, m.ToEntity(p))
	}
	return result
}
