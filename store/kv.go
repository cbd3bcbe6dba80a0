// Package store holds the durable client-side appointment queue: an
// ordered sequence of locally created records kept in a scoped key-value
// area, with a pure in-memory fallback when storage is unavailable.
package store

import (
	"context"
	"errors"
	"sync"
)

// Sentinel errors for the storage layer.
var (
	// ErrStorageUnavailable means the backing store rejected a write
	// (quota, disabled, connection lost). The in-memory session state is
	// still updated; only durability is lost.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrNotFound means the key has never been written.
	ErrNotFound = errors.New("key not found")
)

// KV is the scoped durable string store the queue persists into.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryKV is a process-local KV used in tests and as the degraded
// fallback wiring.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
