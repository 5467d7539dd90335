// Package credentials keeps the bearer token issued at login.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"

	"github.com/SscSPs/money_tracker/internal/core/ports"
)

var (
	_ ports.CredentialProvider = (*FileStore)(nil)
	_ ports.CredentialProvider = (*MemoryStore)(nil)
)

// FileStore persists the token as an oauth2.Token JSON document readable only
// by the current user, so a login survives between CLI invocations.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Get returns the stored token. A missing or unreadable file means no token.
func (s *FileStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil || tok.AccessToken == "" {
		return "", false
	}
	return tok.AccessToken, true
}

func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening credentials file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credentials file: %w", err)
	}
	return nil
}

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Set("")
}
