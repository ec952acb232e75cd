package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidKey is returned for keys that would escape the base directory.
var ErrInvalidKey = errors.New("storage: invalid key")

// LocalStorage stores files on the local filesystem.
type LocalStorage struct {
	baseDir   string // root directory on disk, e.g. "./uploads"
	urlPrefix string // URL prefix the files are served under, e.g. "/uploads"
}

// NewLocalStorage creates a LocalStorage.
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// BaseDir returns the directory files are written to.
func (s *LocalStorage) BaseDir() string { return s.baseDir }

func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.baseDir, clean), nil
}

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	dest, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return s.urlPrefix + "/" + strings.TrimPrefix(filepath.ToSlash(key), "/"), nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}
