// Package credential keeps the single bearer token of the admin client.
package credential

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileName is the fixed name the token is persisted under.
const FileName = "access_token"

// Store holds at most one opaque bearer token. Get returns "" when empty.
type Store interface {
	Set(token string) error
	Get() (string, error)
	Clear() error
}

// FileStore persists the token in Dir/access_token so it survives restarts.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created on first Set.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path is the file the token is written to.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, FileName)
}

func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("credential: create dir: %w", err)
	}
	if err := os.WriteFile(s.Path(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("credential: write token: %w", err)
	}
	return nil
}

func (s *FileStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("credential: read token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("credential: remove token: %w", err)
	}
	return nil
}

// MemoryStore keeps the token for the lifetime of the process only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
