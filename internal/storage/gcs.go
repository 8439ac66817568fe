package storage

import (
	"context"
	"fmt"
	"io"

	"toko-backend/internal/apperr"

	gcs "cloud.google.com/go/storage"
)

// GCSStore uploads into a Google Cloud Storage bucket and returns the
// public object URL.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init gcs client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("%w: gcs write: %v", apperr.ErrUpload, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: gcs close: %v", apperr.ErrUpload, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name), nil
}
