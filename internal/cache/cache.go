// Package cache persists inventory state as pretty-printed JSON files and
// decides when a persisted snapshot is too old to serve.
package cache

import (
	"encoding/json"
	"os"
	"time"
)

// Valid reports whether the cached snapshot may be served without hitting
// the provider. The snapshot must exist and be no older than ttl, and the
// index file must exist alongside it. A snapshot exactly ttl old is still
// valid; the index file's own age is not checked.
func Valid(snapshotPath, indexPath string, ttl time.Duration) bool {
	info, err := os.Stat(snapshotPath)
	if err != nil || info.IsDir() {
		return false
	}
	if time.Since(info.ModTime()) > ttl {
		return false
	}
	if _, err := os.Stat(indexPath); err != nil {
		return false
	}
	return true
}

// Write serializes v as 2-space-indented JSON with sorted keys and
// overwrites path.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read returns the file contents verbatim, without re-validating them.
func Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// EnsureDir creates the cache directory if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
