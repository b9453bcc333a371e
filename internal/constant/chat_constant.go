package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// DefaultSystemPrompt is used when a project is created without one.
	DefaultSystemPrompt = "You are a helpful AI assistant."

	// ActivePromptsHeader introduces the active prompt snippets appended
	// to a project's system prompt before dispatch.
	ActivePromptsHeader = "Additional context:"

	// FilePurposeAssistants is the only purpose currently attached to
	// uploaded files. Kept as a constant so additional purposes can be
	// added without touching call sites.
	FilePurposeAssistants = "assistants"
)
