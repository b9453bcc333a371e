package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserRegisteredEvent(userId, email string) Event {
	return BaseEvent{
		Type: "USER_REGISTERED",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewUserLoginEvent(userId, email string) Event {
	return BaseEvent{
		Type: "USER_LOGIN",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewChatCompletedEvent(sessionId, projectId string, messageCount int) Event {
	return BaseEvent{
		Type: "CHAT_COMPLETED",
		Data: map[string]interface{}{
			"session_id":    sessionId,
			"project_id":    projectId,
			"message_count": messageCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewProjectDeletedEvent(projectId, userId string) Event {
	return BaseEvent{
		Type: "PROJECT_DELETED",
		Data: map[string]interface{}{
			"project_id": projectId,
			"user_id":    userId,
		},
		OccurredAt: time.Now(),
	}
}
