package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	goopenai "github.com/sashabaranov/go-openai"
)

type OpenAIStore struct {
	client *goopenai.Client
}

// Ensure OpenAIStore implements Store
var _ Store = &OpenAIStore{}

func NewOpenAIStore(apiKey string) (*OpenAIStore, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is not configured")
	}
	return &OpenAIStore{client: goopenai.NewClient(apiKey)}, nil
}

func (s *OpenAIStore) Upload(ctx context.Context, filename string, content io.Reader, purpose string) (*UploadedFile, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}

	file, err := s.client.CreateFileBytes(ctx, goopenai.FileBytesRequest{
		Name:    filename,
		Bytes:   data,
		Purpose: goopenai.PurposeType(purpose),
	})
	if err != nil {
		return nil, fmt.Errorf("openai file upload failed: %w", err)
	}

	return &UploadedFile{
		ExternalId: file.ID,
		Filename:   file.FileName,
		Purpose:    string(file.Purpose),
		SizeBytes:  int64(file.Bytes),
	}, nil
}

func (s *OpenAIStore) Delete(ctx context.Context, externalId string) error {
	if err := s.client.DeleteFile(ctx, externalId); err != nil {
		return fmt.Errorf("openai file delete failed: %w", err)
	}
	return nil
}
