// Package localstore is the device-local persistence boundary: one JSON
// record per collection key, the way the original app used localStorage.
// A missing or malformed record is never an error; callers get their
// fallback value and startup proceeds.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get decodes the record for key into out. It reports whether out was
// populated; on a missing or unreadable record out is left untouched so
// the caller's default value survives.
func (s *Store) Get(key string, out any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

func (s *Store) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
