package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type samplePayload struct {
	Login string   `json:"login"`
	Stars int      `json:"stars"`
	Tags  []string `json:"tags"`
}

func TestSetGetRoundTrip(t *testing.T) {
	s := NewStoreWithDir(t.TempDir())

	want := samplePayload{Login: "mayen007", Stars: 42, Tags: []string{"go", "portfolio"}}
	s.Set("github_user", want)

	raw, ok := s.Get("github_user")
	if !ok {
		t.Fatal("expected cache hit after Set")
	}

	var got samplePayload
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("failed to unmarshal cached payload: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := NewStoreWithDir(t.TempDir())

	if _, ok := s.Get("github_repos"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestGetExpiredEntryDeletes(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreWithDir(dir)

	// Write an entry stamped beyond the TTL directly.
	stale := entry{
		Data:      json.RawMessage(`{"login":"old"}`),
		Timestamp: time.Now().Add(-11 * time.Minute).UnixMilli(),
	}
	data, err := json.Marshal(stale)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "github_user.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Get("github_user"); ok {
		t.Error("expected miss for expired entry")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected expired entry to be deleted")
	}
}

func TestGetMalformedEntryDeletes(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreWithDir(dir)

	path := filepath.Join(dir, "github_stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Get("github_stats"); ok {
		t.Error("expected miss for malformed entry")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected malformed entry to be deleted")
	}
}

func TestSetOverwrites(t *testing.T) {
	s := NewStoreWithDir(t.TempDir())

	s.Set("github_user", samplePayload{Login: "first"})
	s.Set("github_user", samplePayload{Login: "second"})

	raw, ok := s.Get("github_user")
	if !ok {
		t.Fatal("expected cache hit")
	}
	var got samplePayload
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.Login != "second" {
		t.Errorf("expected overwrite to win, got login %q", got.Login)
	}
}

func TestDeleteAndClear(t *testing.T) {
	s := NewStoreWithDir(t.TempDir())

	s.Set("github_user", samplePayload{Login: "a"})
	s.Set("github_repos", samplePayload{Login: "b"})

	s.Delete("github_user")
	if _, ok := s.Get("github_user"); ok {
		t.Error("expected miss after Delete")
	}
	if _, ok := s.Get("github_repos"); !ok {
		t.Error("expected other key to survive Delete")
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get("github_repos"); ok {
		t.Error("expected miss after Clear")
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreWithDir(dir)

	s.Set("github_user", samplePayload{Login: "fresh"})

	stale := entry{
		Data:      json.RawMessage(`{}`),
		Timestamp: time.Now().Add(-time.Hour).UnixMilli(),
	}
	data, err := json.Marshal(stale)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "github_pinned.json"), data, 0600); err != nil {
		t.Fatal(err)
	}

	total, valid, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("expected 2 total entries, got %d", total)
	}
	if valid != 1 {
		t.Errorf("expected 1 valid entry, got %d", valid)
	}
}

func TestSetWriteFailureIsSwallowed(t *testing.T) {
	// Point the store at a path that cannot be written.
	s := NewStoreWithDir(filepath.Join(t.TempDir(), "missing", "nested"))

	// Must not panic or error; the cache is best-effort.
	s.Set("github_user", samplePayload{Login: "x"})

	if _, ok := s.Get("github_user"); ok {
		t.Error("expected miss after failed write")
	}
}
