// Package storage provides the key-value persistence layer: a KV port
// with memory, file, and SQLite backends, and a generic Persisted bridge
// that keeps a typed value synchronized with one key.
package storage

// KV defines the interface for string-keyed storage areas.
type KV interface {
	// Get returns the raw value stored under key. The boolean reports
	// whether the key was present; an error means the storage area
	// itself failed.
	Get(key string) (string, bool, error)

	// Set writes the raw value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error

	// Lifecycle
	Close() error
}
