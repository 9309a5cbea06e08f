package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes uploads into a directory served as static files.
type LocalStore struct {
	dir     string
	urlPath string
	now     func() time.Time
	create  func(name string) (file, error)
}

// file is the part of *os.File that Put writes through.
type file interface {
	io.WriteCloser
	Name() string
}

func createFile(name string) (file, error) {
	return os.Create(name)
}

// NewLocalStore creates the upload directory when missing.
func NewLocalStore(dir, urlPath string) (*LocalStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	urlPath = "/" + strings.Trim(strings.TrimSpace(urlPath), "/")
	return &LocalStore{dir: dir, urlPath: urlPath, now: time.Now, create: createFile}, nil
}

func (s *LocalStore) Driver() string { return "local" }

// Put copies body into a new file and returns its public URL.
func (s *LocalStore) Put(_ context.Context, filename, _ string, body io.ReadSeeker) (Object, error) {
	key := objectName("20060102", filename, s.now())

	dst, err := s.create(filepath.Join(s.dir, key))
	if err != nil {
		return Object{}, fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(dst, body); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return Object{}, fmt.Errorf("save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return Object{}, fmt.Errorf("close file: %w", err)
	}

	return Object{Key: key, URL: path.Join(s.urlPath, key)}, nil
}

// Delete removes a previously stored file. Missing files are not an error.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" || key != filepath.Base(key) {
		return fmt.Errorf("invalid object key %q", key)
	}

	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
