package contract

import (
	"context"

	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.FileRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FileRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FileRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
