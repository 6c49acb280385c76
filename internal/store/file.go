package store

import (
	"context"                    // Context for storage operations
	"crypto_bot/internal/domain" // Importing domain models
	"encoding/json"              // JSON encoding/decoding
	"errors"                     // Error inspection
	"io/fs"                      // Filesystem error values
	"os"                         // File I/O
	"path/filepath"              // Path manipulation
)

// Compile-time check to ensure FileStore implements Store
var _ Store = (*FileStore)(nil)

// FileStore keeps the whole user mapping in a single JSON file
type FileStore struct {
	path string // Path of the JSON file
}

// NewFileStore returns a store backed by the JSON file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the entire user mapping from the file
func (s *FileStore) Load(_ context.Context) (map[string]*domain.UserRecord, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]*domain.UserRecord{}, nil // No snapshot yet, start empty
	} else if err != nil {
		return nil, err
	}
	users := map[string]*domain.UserRecord{}
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Save rewrites the entire user mapping. The snapshot is written to a temporary
// file and renamed so a crash mid-write never leaves a truncated store.
func (s *FileStore) Save(_ context.Context, users map[string]*domain.UserRecord) error {
	b, err := json.Marshal(users) // Marshal the full mapping to JSON
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp" // Temporary file next to the target
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path) // Atomic replace of the snapshot
}
