package payroll

import (
	"context"
	"os"
	"path/filepath"
)

// DocumentStore persists rendered payslip documents and returns a stable
// location for the slip record.
type DocumentStore interface {
	Store(ctx context.Context, name string, data []byte) (string, error)
}

// LocalDocumentStore writes documents to a directory on disk. Good enough
// for a single-node deployment; the interface leaves room for object
// storage later.
type LocalDocumentStore struct {
	dir string
}

func NewLocalDocumentStore(dir string) *LocalDocumentStore {
	if dir == "" {
		dir = "payslips"
	}
	return &LocalDocumentStore{dir: dir}
}

func (s *LocalDocumentStore) Store(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
