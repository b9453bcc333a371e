package filestore

import (
	"context"
	"io"
)

// UploadedFile describes a file accepted by the backing store.
type UploadedFile struct {
	ExternalId string
	Filename   string
	Purpose    string
	SizeBytes  int64
}

// Store defines the contract for an external file host.
type Store interface {
	// Upload pushes the file content to the host and returns its
	// host-assigned identity.
	Upload(ctx context.Context, filename string, content io.Reader, purpose string) (*UploadedFile, error)

	// Delete removes a previously uploaded file by its external id.
	Delete(ctx context.Context, externalId string) error
}
