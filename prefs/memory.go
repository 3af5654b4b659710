package prefs

import (
	"context"
	"sort"
	"sync"

	"github.com/zero-day-ai/plistkit/plist"
)

// MemoryStore keeps preferences in process memory. It is the default
// backend and the one used in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]plist.Value
	closed bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]plist.Value)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (plist.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("get", key, ErrStoreClosed)
	}
	v, ok := s.values[key]
	if !ok {
		return nil, notFound(key)
	}
	return v, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, key string, v plist.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storeErr("set", key, ErrStoreClosed)
	}
	if v == nil {
		delete(s.values, key)
		return nil
	}
	s.values[key] = v
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storeErr("delete", key, ErrStoreClosed)
	}
	delete(s.values, key)
	return nil
}

// Keys implements Store.
func (s *MemoryStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("keys", "", ErrStoreClosed)
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
