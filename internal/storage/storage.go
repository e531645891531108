package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/spec-kit/job-board-service/internal/config"
)

// Storage persists uploaded files (resumes, logos, profile photos) and hands
// back a public URL. The rest of the system treats that URL as an opaque
// string. Delete takes a URL previously returned by Upload; URLs this backend
// did not produce are ignored.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// New creates a storage backend from configuration.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
