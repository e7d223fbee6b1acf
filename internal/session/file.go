package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ottoman-ai/chef-chat/internal/model/chat"
)

// FileStore persists one JSON document per session id under a directory,
// typically the OS temp dir. Sessions are ephemeral: nothing expires them
// beyond the host cleaning its temp storage.
type FileStore struct {
	dir string
}

// NewFileStore ensures dir exists and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// path maps a session id to its backing file. Ids are server-minted UUIDs;
// Base guards against a tampered cookie smuggling path separators.
func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id)+".json")
}

// Get retrieves a session by identifier.
func (s *FileStore) Get(_ context.Context, id string) (chat.Session, bool, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return chat.Session{}, false, nil
	}
	if err != nil {
		return chat.Session{}, false, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	var sess chat.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return chat.Session{}, false, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return sess, true, nil
}

// Put stores a session under the given identifier.
func (s *FileStore) Put(_ context.Context, id string, sess chat.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}
	if err := os.WriteFile(s.path(id), data, 0o600); err != nil {
		return fmt.Errorf("failed to write session %s: %w", id, err)
	}
	return nil
}

// Delete removes all state for the given identifier. Deleting an absent
// session succeeds.
func (s *FileStore) Delete(_ context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session %s: %w", id, err)
	}
	return nil
}
