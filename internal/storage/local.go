package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"toko-backend/internal/apperr"
)

// LocalStore writes objects under a directory served by the static
// /uploads route.
type LocalStore struct {
	dir           string
	publicBaseURL string
}

func NewLocalStore(dir, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, publicBaseURL: publicBaseURL}, nil
}

func (s *LocalStore) Upload(_ context.Context, name, _ string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create file: %v", apperr.ErrUpload, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: write file: %v", apperr.ErrUpload, err)
	}

	return fmt.Sprintf("%s/uploads/%s", s.publicBaseURL, filepath.Base(name)), nil
}
