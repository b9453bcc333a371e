package mapper

import (
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/model"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.Prompt) *entity.Prompt {
	if p == nil {
		return nil
	}
	return &entity.Prompt{
		Id:        p.Id,
		ProjectId: p.ProjectId,
		Name:      p.Name,
		Content:   p.Content,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PromptMapper) ToModel(p *entity.Prompt) *model.Prompt {
	if p == nil {
		return nil
	}
	return &model.Prompt{
		Id:        p.Id,
		ProjectId: p.ProjectId,
		Name:      p.Name,
		Content:   p.Content,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PromptMapper) ToEntities(prompts []*model.Prompt) []*entity.Prompt {
	result := make([]*entity.Prompt, 0, len(prompts))
	for _, p := range prompts {
		result = append(result, m.ToEntity(p))
	}
	return result
}
