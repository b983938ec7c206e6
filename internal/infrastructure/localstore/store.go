// Package localstore persists in-progress form drafts as one JSON file per
// key under a base directory. It is the server-side counterpart of the
// origin-scoped key-value storage the operator app writes its drafts to.
package localstore

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tms_gruas/internal/usecase/interfaces"
)

var ErrInvalidKey = errors.New("invalid cache key")

// Store is a keyed JSON draft store. Writes replace the whole entry;
// concurrent use is safe, last write wins.
type Store struct {
	dir string
	mu  sync.Mutex
}

var _ interfaces.IFormCache = (*Store)(nil)

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save serializes v and replaces the entry for key. The write goes through a
// temp file + rename so a crash never leaves a half-written draft behind.
func (s *Store) Save(key string, v any) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads the entry for key into v. Missing entries report (false, nil).
// Entries that fail to parse are deleted and reported as absent: a corrupt
// draft must never block the user-facing flow.
func (s *Store) Load(key string, v any) (bool, error) {
	path, err := s.path(key)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[formcache][store] dropping unparseable entry key=%s err=%v", key, err)
		_ = os.Remove(path)
		return false, nil
	}
	return true, nil
}

func (s *Store) Clear(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if !validKey(key) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, ".") {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
