package kv

import (
	"context"
	"sync"
)

// MemoryStore is a non-durable backend for tests and as the failover
// fallback. Payloads are copied on the way in and out.
type MemoryStore struct {
	collections sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	val, ok := s.collections.Load(name)
	if !ok {
		return nil, ErrNotFound
	}
	data := val.([]byte)
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	s.collections.Store(name, stored)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
