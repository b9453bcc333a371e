package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chatbot-platform-be/internal/constant"
	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/logger"
	"chatbot-platform-be/internal/repository/specification"
	"chatbot-platform-be/internal/repository/unitofwork"
	"chatbot-platform-be/pkg/events"
	"chatbot-platform-be/pkg/llm"
	pkgNats "chatbot-platform-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	// activePromptLimit caps how many prompt snippets join the system
	// prompt for a single exchange.
	activePromptLimit = 10

	// sessionListLimit caps the session listing per project.
	sessionListLimit = 50

	// previewMaxLen truncates the session preview text.
	previewMaxLen = 100
)

type IChatService interface {
	SendChat(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	CreateSession(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.CreateSessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.SessionSummaryResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, sessionId uuid.UUID) error
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

// buildSystemPrompt merges the project's system prompt with its active
// prompt snippets, newest first. Each snippet renders as "[name]: content".
func buildSystemPrompt(project *entity.Project, prompts []*entity.Prompt) string {
	systemPrompt := project.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = constant.DefaultSystemPrompt
	}

	if len(prompts) == 0 {
		return systemPrompt
	}

	blocks := make([]string, len(prompts))
	for i, prompt := range prompts {
		blocks[i] = fmt.Sprintf("[%s]: %s", prompt.Name, prompt.Content)
	}

	return systemPrompt + "\n\n" + constant.ActivePromptsHeader + "\n" + strings.Join(blocks, "\n\n")
}

func (s *chatService) SendChat(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
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

	// Resolve the session up front. A bad session id must fail before
	// anything is persisted.
	var session *entity.ChatSession
	isNewSession := false
	if req.SessionId != nil {
		session, err = uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: *req.SessionId},
			specification.ByProjectID{ProjectID: projectId},
		)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, apperror.New(apperror.ErrNotFound, "Chat session not found")
		}
	} else {
		session = &entity.ChatSession{
			Id:        uuid.New(),
			ProjectId: projectId,
			Messages:  []entity.ChatMessage{},
			CreatedAt: time.Now(),
		}
		isNewSession = true
	}

	prompts, err := uow.PromptRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: activePromptLimit},
	)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(session.Messages)+2)
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: buildSystemPrompt(project, prompts),
	})
	for _, msg := range session.Messages {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: req.Message,
	})

	if s.sysLogger != nil {
		s.sysLogger.Info("chat", "dispatching completion", map[string]interface{}{
			"project_id":     projectId.String(),
			"session_id":     session.Id.String(),
			"history_length": len(history),
		})
	}

	reply, err := s.llmProvider.Chat(ctx, history)
	if err != nil {
		return nil, apperror.Newf(apperror.ErrServiceUnavailable, "AI provider request failed: %v", err)
	}

	now := time.Now()
	assistantMsg := entity.ChatMessage{Role: constant.ChatMessageRoleAssistant, Content: reply, Timestamp: now}
	session.Messages = append(session.Messages,
		entity.ChatMessage{Role: constant.ChatMessageRoleUser, Content: req.Message, Timestamp: now},
		assistantMsg,
	)
	session.UpdatedAt = &now

	if isNewSession {
		err = uow.ChatSessionRepository().Create(ctx, session)
	} else {
		err = uow.ChatSessionRepository().Update(ctx, session)
	}
	if err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewChatCompletedEvent(session.Id.String(), projectId.String(), len(session.Messages))); err != nil {
		fmt.Printf("[WARN] Failed to publish CHAT_COMPLETED event: %v\n", err)
	}

	return &dto.SendChatResponse{
		SessionId: session.Id,
		ProjectId: projectId,
		Message: dto.ChatMessageDTO{
			Role:      assistantMsg.Role,
			Content:   assistantMsg.Content,
			Timestamp: assistantMsg.Timestamp,
		},
	}, nil
}

// CreateSession opens an empty conversation, letting clients reserve a
// session id before the first message.
func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.CreateSessionResponse, error) {
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

	session := entity.ChatSession{
		Id:        uuid.New(),
		ProjectId: projectId,
		Messages:  []entity.ChatMessage{},
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

// sessionPreview returns the content of the most recent user message,
// truncated for listing.
func sessionPreview(messages []entity.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == constant.ChatMessageRoleUser {
			preview := messages[i].Content
			if len(preview) > previewMaxLen {
				preview = preview[:previewMaxLen]
			}
			return preview
		}
	}
	return ""
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.SessionSummaryResponse, error) {
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

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: sessionListLimit},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.SessionSummaryResponse, len(sessions))
	for i, session := range sessions {
		summaries[i] = &dto.SessionSummaryResponse{
			Id:           session.Id,
			MessageCount: len(session.Messages),
			Preview:      sessionPreview(session.Messages),
			CreatedAt:    session.CreatedAt,
			UpdatedAt:    session.UpdatedAt,
		}
	}
	return summaries, nil
}

func (s *chatService) GetSession(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.loadOwnedSession(ctx, uow, userId, projectId, sessionId)
	if err != nil {
		return nil, err
	}

	messages := make([]dto.ChatMessageDTO, len(session.Messages))
	for i, msg := range session.Messages {
		messages[i] = dto.ChatMessageDTO{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		}
	}

	return &dto.SessionDetailResponse{
		Id:        session.Id,
		ProjectId: session.ProjectId,
		Messages:  messages,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.loadOwnedSession(ctx, uow, userId, projectId, sessionId)
	if err != nil {
		return err
	}

	return uow.ChatSessionRepository().Delete(ctx, session.Id)
}

func (s *chatService) loadOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, projectId uuid.UUID, sessionId uuid.UUID) (*entity.ChatSession, error) {
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

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByProjectID{ProjectID: projectId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.New(apperror.ErrNotFound, "Chat session not found")
	}

	return session, nil
}
