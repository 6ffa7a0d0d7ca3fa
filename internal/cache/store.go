// Package cache provides durable best-effort caching of fetched GitHub
// payloads. Each logical dataset is one JSON file holding the payload and
// the time it was stored; entries older than the fixed TTL are deleted on
// read. The cache is never a source of truth: write failures are swallowed
// and readers treat any malformed entry as a miss.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mayen007/gitfolio/internal/constants"
	"github.com/mayen007/gitfolio/internal/log"
)

// entry is the on-disk layout: the serialized payload plus the store time
// in epoch milliseconds.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Store persists payloads under a single namespace directory.
type Store struct {
	dir string
	ttl time.Duration
}

// NewStore creates a store under the user cache directory.
func NewStore() (*Store, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(cacheDir, "gitfolio")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Store{dir: dir, ttl: constants.CacheTTL}, nil
}

// NewStoreWithDir creates a store at the given directory (for testing).
func NewStoreWithDir(dir string) *Store {
	return &Store{dir: dir, ttl: constants.CacheTTL}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the payload stored under key, or (nil, false) when the entry
// is absent, expired, or fails to parse. Expired and malformed entries are
// deleted.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		log.Debug("cache entry unreadable, deleting", "key", key, "error", err)
		_ = os.Remove(path)
		return nil, false
	}

	storedAt := time.UnixMilli(e.Timestamp)
	if time.Since(storedAt) > s.ttl {
		log.Debug("cache entry expired", "key", key, "storedAt", storedAt)
		_ = os.Remove(path)
		return nil, false
	}

	return e.Data, true
}

// Set stores the payload under key, stamping the current time. The cache is
// best-effort: marshal and write failures are logged and otherwise ignored.
func (s *Store) Set(key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Debug("failed to marshal cache payload", "key", key, "error", err)
		return
	}

	raw, err := json.Marshal(entry{
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		log.Debug("failed to marshal cache entry", "key", key, "error", err)
		return
	}

	if err := os.WriteFile(s.path(key), raw, 0600); err != nil {
		log.Debug("failed to write cache entry", "key", key, "error", err)
	}
}

// Delete removes a single entry.
func (s *Store) Delete(key string) {
	_ = os.Remove(s.path(key))
}

// Clear removes all entries in the namespace.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, ent := range entries {
		if !strings.HasSuffix(ent.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, ent.Name())); err != nil {
			return err
		}
	}

	return nil
}

// Stats returns the total number of entries and how many are still within
// the TTL.
func (s *Store) Stats() (total, valid int, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	now := time.Now()
	for _, ent := range entries {
		if !strings.HasSuffix(ent.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, ent.Name()))
		if err != nil {
			continue
		}
		total++

		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			continue
		}
		if now.Sub(time.UnixMilli(e.Timestamp)) <= s.ttl {
			valid++
		}
	}

	return total, valid, nil
}
