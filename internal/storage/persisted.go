package storage

import (
	"encoding/json"
	"log/slog"
)

// Persisted keeps a typed value synchronized with a single KV key.
//
// On construction it loads the stored value; a missing key, an
// unavailable storage area, or malformed stored content all fall back to
// the initial value, logged and never surfaced. Every Set or Update
// serializes the new value and writes it back under the same key; a
// write failure is logged and swallowed, and the in-memory value stands.
//
// Persisted is not safe for concurrent use. Callers that share one
// instance serialize access themselves (see tasklist.Store).
type Persisted[T any] struct {
	kv     KV
	key    string
	logger *slog.Logger
	value  T
}

// NewPersisted creates the bridge and loads the current value for key,
// falling back to initial if nothing usable is stored.
func NewPersisted[T any](kv KV, key string, initial T, logger *slog.Logger) *Persisted[T] {
	p := &Persisted[T]{
		kv:     kv,
		key:    key,
		logger: logger,
		value:  initial,
	}

	raw, ok, err := kv.Get(key)
	if err != nil {
		logger.Warn("storage unavailable, using initial value", "key", key, "error", err)
		return p
	}
	if !ok {
		return p
	}

	var stored T
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("stored value is malformed, using initial value", "key", key, "error", err)
		return p
	}

	p.value = stored
	return p
}

// Get returns the current value.
func (p *Persisted[T]) Get() T {
	return p.value
}

// Set replaces the current value and writes it back.
func (p *Persisted[T]) Set(value T) {
	p.value = value
	p.save()
}

// Update applies fn to the current value, stores the result, writes it
// back, and returns it.
func (p *Persisted[T]) Update(fn func(T) T) T {
	p.value = fn(p.value)
	p.save()
	return p.value
}

// save persists the literal current value. It never rolls the in-memory
// value back on failure.
func (p *Persisted[T]) save() {
	raw, err := json.Marshal(p.value)
	if err != nil {
		p.logger.Warn("failed to serialize value", "key", p.key, "error", err)
		return
	}

	if err := p.kv.Set(p.key, string(raw)); err != nil {
		p.logger.Warn("failed to persist value", "key", p.key, "error", err)
	}
}
