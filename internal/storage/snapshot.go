package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNoSnapshot signals that no state was ever persisted under a key. Stores
// treat it the same as a corrupt payload: start from the default state.
var ErrNoSnapshot = errors.New("no snapshot for key")

// SnapshotStore persists one serialized blob per namespaced store key.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob := make([]byte, len(payload))
	copy(blob, payload)
	m.blobs[key] = blob
	return nil
}

var _ SnapshotStore = (*MemoryStore)(nil)
