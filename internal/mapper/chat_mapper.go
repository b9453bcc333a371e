package mapper

import (
	"encoding/json"
	"time"

	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/model"

	"gorm.io/datatypes"
)

// sessionMessage is the persisted JSON shape of one conversation turn.
type sessionMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(s *model.ChatSession) (*entity.ChatSession, error) {
	if s == nil {
		return nil, nil
	}

	var stored []sessionMessage
	if len(s.Messages) > 0 {
		if err := json.Unmarshal(s.Messages, &stored); err != nil {
			return nil, err
		}
	}

	messages := make([]entity.ChatMessage, 0, len(stored))
	for _, msg := range stored {
		messages = append(messages, entity.ChatMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	return &entity.ChatSession{
		Id:        s.Id,
		ProjectId: s.ProjectId,
		Messages:  messages,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

func (m *ChatMapper) ToModel(s *entity.ChatSession) (*model.ChatSession, error) {
	if s == nil {
		return nil, nil
	}

	stored := make([]sessionMessage, 0, len(s.Messages))
	for _, msg := range s.Messages {
		stored = append(stored, sessionMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}

	return &model.ChatSession{
		Id:        s.Id,
		ProjectId: s.ProjectId,
		Messages:  datatypes.JSON(raw),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

func (m *ChatMapper) ToEntities(sessions []*model.ChatSession) ([]*entity.ChatSession, error) {
	result := make([]*entity.ChatSession, 0, len(sessions))
	for _, s := range sessions {
		e, err := m.ToEntity(s)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, nil
}
