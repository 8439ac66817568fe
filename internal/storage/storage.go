// Package storage abstracts where uploaded product images live. One
// interface, three backends, selected by configuration.
package storage

import (
	"context"
	"fmt"
	"io"

	"toko-backend/internal/config"
)

// ObjectStore accepts a byte stream plus content type and returns a
// publicly resolvable URL.
type ObjectStore interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// New selects the backend from STORAGE_BACKEND: local, gcs or s3.
func New(ctx context.Context, cfg *config.Storage) (ObjectStore, error) {
	switch cfg.Backend {
	case "local":
		return NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL)
	case "gcs":
		return NewGCSStore(ctx, cfg.GCSBucket)
	case "s3":
		return NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
