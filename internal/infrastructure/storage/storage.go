// Package storage provides object storage for uploaded files: resumes,
// timesheets, business logos. Backed by any S3-compatible store; an in-memory
// implementation covers development and tests.
package storage

import (
	"context"
	"time"
)

// ObjectStorage stores and retrieves binary objects by key
type ObjectStorage interface {
	// Upload stores data under storageKey
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	// Download returns the object's bytes
	Download(ctx context.Context, storageKey string) ([]byte, error)
	// Delete removes the object; deleting a missing object is not an error
	Delete(ctx context.Context, storageKey string) error
	// Exists reports whether the object is present
	Exists(ctx context.Context, storageKey string) (bool, error)
	// GenerateDownloadURL returns a presigned URL and its expiry
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}
