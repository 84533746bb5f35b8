package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store persists JSON-serializable values under string keys, one file per
// key, directly in a root directory. The root is created on first write.
// Entries are never evicted or expired; stale entries are resolved by
// deleting the files externally.
type Store struct {
	root   string
	logger *zap.Logger
}

func NewStore(root string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{root: root, logger: logger}
}

// Get decodes the entry for key into v. A missing entry is not an error:
// it reports (false, nil). Any other failure, an unreadable file or
// corrupt JSON, is surfaced as-is; the store never repairs or discards a
// bad entry on its own.
func (s *Store) Get(key string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.root, key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading cache entry %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding cache entry %s: %w", key, err)
	}
	return true, nil
}

// Put writes v under key, creating the root directory if needed. MkdirAll
// is idempotent, so no first-write guard is kept.
func (s *Store) Put(key string, v any) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", key, err)
	}
	if err := os.WriteFile(filepath.Join(s.root, key), data, 0o644); err != nil {
		return fmt.Errorf("writing cache entry %s: %w", key, err)
	}
	s.logger.Debug("cache entry written", zap.String("key", key))
	return nil
}
