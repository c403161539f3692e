// Package state provides durable client-side storage. Records survive
// process restarts so an in-progress build and the login session can be
// resumed. The store is a cache of in-memory state, not a system of
// record; the remote collaborator stays authoritative for anything named
// and saved.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known record keys.
const (
	// KeySession holds the persisted auth session.
	KeySession = "session"

	// KeyBuild holds the in-progress build selection and total.
	KeyBuild = "build"
)

// Store reads and writes JSON records under a state directory.
// Writes are atomic (temp file + rename) so a crash mid-write never
// leaves a half-serialized record behind.
type Store struct {
	dir string
}

// NewStore creates the state directory if needed and returns a store.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("state directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path backing a record key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save serializes v and writes it atomically under key.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing state record %q: %w", key, err)
	}

	path := s.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing state record %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("committing state record %q: %w", key, err)
	}
	return nil
}

// Load reads the record under key into v. Returns false when no record
// exists; a corrupt record is an error, never silently discarded.
func (s *Store) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading state record %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parsing state record %q: %w", key, err)
	}
	return true, nil
}

// Delete removes the record under key. Missing records are not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting state record %q: %w", key, err)
	}
	return nil
}
