// Package localstore persists small per-session JSON blobs (the cart and
// the shipping draft) to local disk. It is best-effort by contract: saves
// that fail are logged and swallowed, and unreadable or malformed content
// loads as absent. The cart is not safety-critical state.
package localstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes named JSON blobs under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local store dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save serializes v under the given key. Failures are logged, never
// returned: durable local state is best-effort.
func (s *Store) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("localstore: failed to marshal %s: %v", key, err)
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		log.Printf("localstore: failed to write %s: %v", key, err)
	}
}

// Load deserializes the blob stored under key into v. It returns false if
// the blob is missing or malformed; v is left untouched in that case so
// callers fall back to their defaults.
func (s *Store) Load(key string, v interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("localstore: ignoring malformed blob %s: %v", key, err)
		return false
	}
	return true
}

// Delete removes the blob stored under key, best-effort.
func (s *Store) Delete(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("localstore: failed to delete %s: %v", key, err)
	}
}

func (s *Store) path(key string) string {
	// Keys come from user ids and must stay within dir.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
