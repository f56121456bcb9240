package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type fileStore struct {
	dir string
}

// NewFileStore persists the session as two JSON files in dir, created on
// first save with owner-only permissions.
func NewFileStore(dir string) Store {
	return fileStore{dir: dir}
}

func (s fileStore) Save(_ context.Context, token Token, user UserProfile) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	if err := s.writeEntry(storeKeyAuth, token); err != nil {
		return err
	}
	return s.writeEntry(storeKeyUser, user)
}

func (s fileStore) Load(_ context.Context) (*Token, *UserProfile, error) {
	var token Token
	if ok := s.readEntry(storeKeyAuth, &token); !ok {
		return nil, nil, nil
	}

	var user UserProfile
	if ok := s.readEntry(storeKeyUser, &user); !ok {
		return nil, nil, nil
	}

	return &token, &user, nil
}

func (s fileStore) Clear(_ context.Context) error {
	for _, key := range []string{storeKeyAuth, storeKeyUser} {
		err := os.Remove(s.entryPath(key))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove session entry %s: %w", key, err)
		}
	}
	return nil
}

func (s fileStore) writeEntry(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session entry %s: %w", key, err)
	}

	if err = os.WriteFile(s.entryPath(key), data, 0o600); err != nil {
		return fmt.Errorf("write session entry %s: %w", key, err)
	}
	return nil
}

func (s fileStore) readEntry(key string, value any) bool {
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, value) == nil
}

func (s fileStore) entryPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}
