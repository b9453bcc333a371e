package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"chatbot-platform-be/internal/constant"
	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(provider *fakeLLM) (IChatService, *fakeUow, uuid.UUID, uuid.UUID) {
	userId := uuid.New()
	projectId := uuid.New()
	uow := &fakeUow{projects: []entity.Project{{
		Id:           projectId,
		UserId:       userId,
		Name:         "Bot",
		SystemPrompt: "You are a support bot.",
	}}}
	return NewChatService(&fakeFactory{uow: uow}, provider, nil, nil), uow, userId, projectId
}

func TestSendChatCreatesSession(t *testing.T) {
	provider := &fakeLLM{reply: "Hello back"}
	svc, uow, userId, projectId := newChatFixture(provider)

	res, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, projectId, res.ProjectId)
	assert.Equal(t, constant.ChatMessageRoleAssistant, res.Message.Role)
	assert.Equal(t, "Hello back", res.Message.Content)

	require.Len(t, uow.sessions, 1)
	session := uow.sessions[0]
	assert.Equal(t, res.SessionId, session.Id)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, session.Messages[0].Role)
	assert.Equal(t, "Hello", session.Messages[0].Content)
	assert.Equal(t, constant.ChatMessageRoleAssistant, session.Messages[1].Role)
	assert.Equal(t, "Hello back", session.Messages[1].Content)
}

func TestSendChatAppendsToExistingSession(t *testing.T) {
	provider := &fakeLLM{reply: "a2"}
	svc, uow, userId, projectId := newChatFixture(provider)

	sessionId := uuid.New()
	uow.sessions = []entity.ChatSession{{
		Id:        sessionId,
		ProjectId: projectId,
		Messages: []entity.ChatMessage{
			{Role: constant.ChatMessageRoleUser, Content: "u1"},
			{Role: constant.ChatMessageRoleAssistant, Content: "a1"},
		},
		CreatedAt: time.Now().Add(-time.Hour),
	}}

	res, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{
		Message:   "u2",
		SessionId: &sessionId,
	})
	require.NoError(t, err)
	assert.Equal(t, sessionId, res.SessionId)

	require.Len(t, uow.sessions, 1)
	msgs := uow.sessions[0].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, []string{"u1", "a1", "u2", "a2"}, []string{
		msgs[0].Content, msgs[1].Content, msgs[2].Content, msgs[3].Content,
	})
	assert.NotNil(t, uow.sessions[0].UpdatedAt)
}

func TestSendChatAssemblesSystemPrompt(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, userId, projectId := newChatFixture(provider)

	uow.prompts = []entity.Prompt{
		{Id: uuid.New(), ProjectId: projectId, Name: "tone", Content: "Be terse.", IsActive: true, CreatedAt: time.Now()},
		{Id: uuid.New(), ProjectId: projectId, Name: "legal", Content: "No advice.", IsActive: true, CreatedAt: time.Now().Add(-time.Minute)},
		{Id: uuid.New(), ProjectId: projectId, Name: "off", Content: "Ignored.", IsActive: false, CreatedAt: time.Now()},
	}

	_, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{Message: "hi"})
	require.NoError(t, err)

	require.NotEmpty(t, provider.gotHistory)
	system := provider.gotHistory[0]
	assert.Equal(t, constant.ChatMessageRoleSystem, system.Role)

	want := "You are a support bot.\n\n" + constant.ActivePromptsHeader + "\n[tone]: Be terse.\n\n[legal]: No advice."
	assert.Equal(t, want, system.Content)
	assert.NotContains(t, system.Content, "Ignored.")
}

func TestSendChatWithoutActivePrompts(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, _, userId, projectId := newChatFixture(provider)

	_, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{Message: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "You are a support bot.", provider.gotHistory[0].Content)
}

func TestSendChatHistoryOrder(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, userId, projectId := newChatFixture(provider)

	sessionId := uuid.New()
	uow.sessions = []entity.ChatSession{{
		Id:        sessionId,
		ProjectId: projectId,
		Messages: []entity.ChatMessage{
			{Role: constant.ChatMessageRoleUser, Content: "u1"},
			{Role: constant.ChatMessageRoleAssistant, Content: "a1"},
		},
	}}

	_, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{
		Message:   "u2",
		SessionId: &sessionId,
	})
	require.NoError(t, err)

	// system, then stored history in order, then the new user message
	require.Len(t, provider.gotHistory, 4)
	assert.Equal(t, constant.ChatMessageRoleSystem, provider.gotHistory[0].Role)
	assert.Equal(t, "u1", provider.gotHistory[1].Content)
	assert.Equal(t, "a1", provider.gotHistory[2].Content)
	assert.Equal(t, "u2", provider.gotHistory[3].Content)
}

func TestSendChatUnknownSessionIsNotFound(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, userId, projectId := newChatFixture(provider)

	foreignSession := uuid.New()
	_, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{
		Message:   "hi",
		SessionId: &foreignSession,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	// No partial session may exist after the failure.
	assert.Empty(t, uow.sessions)
	assert.Nil(t, provider.gotHistory)
}

func TestSendChatSessionFromOtherProjectIsNotFound(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, userId, projectId := newChatFixture(provider)

	otherProject := uuid.New()
	sessionId := uuid.New()
	uow.sessions = []entity.ChatSession{{Id: sessionId, ProjectId: otherProject}}

	_, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{
		Message:   "hi",
		SessionId: &sessionId,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSendChatProviderFailure(t *testing.T) {
	provider := &fakeLLM{err: errors.New("upstream down")}
	svc, uow, userId, projectId := newChatFixture(provider)

	_, err := svc.SendChat(context.Background(), userId, projectId, &dto.SendChatRequest{Message: "hi"})
	assert.ErrorIs(t, err, apperror.ErrServiceUnavailable)
	// A failed completion persists nothing.
	assert.Empty(t, uow.sessions)
}

func TestListSessionsSummaries(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, userId, projectId := newChatFixture(provider)

	longMessage := strings.Repeat("x", 150)
	uow.sessions = []entity.ChatSession{{
		Id:        uuid.New(),
		ProjectId: projectId,
		Messages: []entity.ChatMessage{
			{Role: constant.ChatMessageRoleUser, Content: "first"},
			{Role: constant.ChatMessageRoleAssistant, Content: "reply"},
			{Role: constant.ChatMessageRoleUser, Content: longMessage},
			{Role: constant.ChatMessageRoleAssistant, Content: "last reply"},
		},
		CreatedAt: time.Now(),
	}}

	res, err := svc.ListSessions(context.Background(), userId, projectId)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 4, res[0].MessageCount)
	// Preview is the latest user message, truncated to 100 characters.
	assert.Equal(t, longMessage[:100], res[0].Preview)
}

func TestGetSessionForeignProjectIsNotFound(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, _, _, projectId := newChatFixture(provider)

	_, err := svc.GetSession(context.Background(), uuid.New(), projectId, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateSessionStartsEmpty(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, userId, projectId := newChatFixture(provider)

	res, err := svc.CreateSession(context.Background(), userId, projectId)
	require.NoError(t, err)

	require.Len(t, uow.sessions, 1)
	assert.Equal(t, res.Id, uow.sessions[0].Id)
	assert.Empty(t, uow.sessions[0].Messages)
}

func TestCreateSessionForeignProjectIsNotFound(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, _, projectId := newChatFixture(provider)

	_, err := svc.CreateSession(context.Background(), uuid.New(), projectId)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, uow.sessions)
}

func TestDeleteSessionRemovesRecord(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	svc, uow, userId, projectId := newChatFixture(provider)

	sessionId := uuid.New()
	uow.sessions = []entity.ChatSession{{Id: sessionId, ProjectId: projectId}}

	err := svc.DeleteSession(context.Background(), userId, projectId, sessionId)
	require.NoError(t, err)
	assert.Empty(t, uow.sessions)
}
