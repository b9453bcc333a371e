package unitofwork

import (
	"context"

	"chatbot-platform-be/internal/repository/contract"
)

// UnitOfWork scopes a set of repository operations to one transaction.
// Callers that only read may use a factory-built instance directly
// without calling Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	PromptRepository() contract.PromptRepository
	ChatSessionRepository() contract.ChatSessionRepository
	FileRepository() contract.FileRepository
}
