package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage writes photos below Dir and serves them under PublicPrefix.
type LocalStorage struct {
	dir          string
	publicPrefix string
}

// NewLocalStorage creates dir when missing.
func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{dir: dir, publicPrefix: "/" + strings.Trim(publicPrefix, "/")}, nil
}

// Dir is the directory served under the public prefix.
func (s *LocalStorage) Dir() string { return s.dir }

// PublicPrefix is the URL path files are served from.
func (s *LocalStorage) PublicPrefix() string { return s.publicPrefix }

func (s *LocalStorage) Put(_ context.Context, filename, contentType string, r io.Reader, _ int64) (string, error) {
	name := objectName(filename, contentType)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path.Join(s.publicPrefix, name), nil
}

func (s *LocalStorage) Delete(_ context.Context, location string) error {
	name, ok := strings.CutPrefix(location, s.publicPrefix+"/")
	if !ok || name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("location %q is not served by this storage", location)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
