package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"bytestudio_backend/internal/config"
)

// Storage abstracts the blob store behind the portfolio. Save returns the
// public URL for the stored object.
type Storage interface {
	Save(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error)
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(path string) string
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	GetSize(ctx context.Context, path string) (int64, error)
}

func NewStorage(cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Storage(cfg)
	case "local", "":
		return NewLocalStorage(cfg.LocalPath, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
