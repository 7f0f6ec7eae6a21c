// Package kvstore provides the key-value persistence layer. Each app
// keeps its whole collection JSON-serialized under a single string
// key and replaces it on every mutation (last write wins).
package kvstore

import (
	"errors"
	"strings"
)

// ErrWriteFailed is returned by stores that refuse a write.
var ErrWriteFailed = errors.New("write failed")

// Store is a string-keyed blob store.
type Store interface {
	// Get returns the value for key, or ok=false when absent.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases the underlying database.
	Close() error
}

// Open creates a store appropriate for the given path. Paths ending in
// ".bolt" open a bbolt database; everything else opens SQLite.
func Open(path string) (Store, error) {
	if strings.HasSuffix(path, ".bolt") {
		return OpenBolt(path)
	}
	return OpenSQLite(path)
}
