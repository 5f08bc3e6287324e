package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"classy-weather/internal/domain/model"
)

// FileQueryStore keeps the query in a file named after the store key inside dir
type FileQueryStore struct {
	path string
}

var _ QueryStore = (*FileQueryStore)(nil)

func NewFileQueryStore(dir string, key string) *FileQueryStore {
	return &FileQueryStore{path: filepath.Join(dir, key)}
}

func (s *FileQueryStore) Load(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Save writes to a fresh temp file in the same directory, then renames it over the query file.
func (s *FileQueryStore) Save(_ context.Context, query string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(query); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileQueryStore) Health() model.ComponentHealthStatus {
	details := map[string]string{"type": "file", "path": s.path}
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		// created on first save
		return up(details)
	}
	if err != nil {
		return down(err, details)
	}
	if !info.IsDir() {
		return down(errors.New(dir+" is not a directory"), details)
	}
	return up(details)
}
