package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	expiresAt time.Time // zero = never
	data      []byte
}

// Memory keeps encoded values in a map. Stored values are copies, so
// callers may mutate what they Set or Get. Expired entries are dropped
// when read.
type Memory[V any] struct {
	items      map[string]entry
	defaultTTL time.Duration
	mu         sync.Mutex
}

// NewMemory returns a Memory cache; Set with a zero TTL uses defaultTTL.
func NewMemory[V any](defaultTTL time.Duration) *Memory[V] {
	return &Memory[V]{items: make(map[string]entry), defaultTTL: defaultTTL}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	e, ok := m.items[key]
	if ok && !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(m.items, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return unmarshal[V](e.data)
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	data, err := marshal(value)
	if err != nil {
		return err
	}
	if ttl == 0 {
		ttl = m.defaultTTL
	}

	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.items[key] = e
	m.mu.Unlock()
	return nil
}

func (m *Memory[V]) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}

// Len counts stored entries, including expired ones not yet read.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
