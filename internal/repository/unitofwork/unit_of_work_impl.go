package unitofwork

import (
	"context"

	"chatbot-platform-be/internal/repository/contract"
	"chatbot-platform-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB

	userRepository        contract.UserRepository
	projectRepository     contract.ProjectRepository
	promptRepository      contract.PromptRepository
	chatSessionRepository contract.ChatSessionRepository
	fileRepository        contract.FileRepository
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db:                    db,
		userRepository:        implementation.NewUserRepository(db),
		projectRepository:     implementation.NewProjectRepository(db),
		promptRepository:      implementation.NewPromptRepository(db),
		chatSessionRepository: implementation.NewChatSessionRepository(db),
		fileRepository:        implementation.NewFileRepository(db),
	}
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) (UnitOfWork, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return NewUnitOfWork(tx), nil
}

func (u *UnitOfWorkImpl) Commit() error {
	return u.db.Commit().Error
}

func (u *UnitOfWorkImpl) Rollback() error {
	return u.db.Rollback().Error
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return u.userRepository
}

func (u *UnitOfWorkImpl) ProjectRepository() contract.ProjectRepository {
	return u.projectRepository
}

func (u *UnitOfWorkImpl) PromptRepository() contract.PromptRepository {
	return u.promptRepository
}

func (u *UnitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return u.chatSessionRepository
}

func (u *UnitOfWorkImpl) FileRepository() contract.FileRepository {
	return u.fileRepository
}
