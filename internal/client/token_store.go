package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTokenFile is the token file name placed in the user's home
// directory.
const DefaultTokenFile = ".resume-keeper-token"

type fileTokenStore struct {
	path string
}

// NewFileTokenStore returns a TokenStore keeping the token in path. An
// empty path resolves to DefaultTokenFile in the home directory.
func NewFileTokenStore(path string) (TokenStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, DefaultTokenFile)
	}
	return &fileTokenStore{path: path}, nil
}

func (s *fileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes token readable by the owner only.
func (s *fileTokenStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (s *fileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
