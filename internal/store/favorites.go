package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"tableside/internal/domain"
	"tableside/internal/storage"
)

// Favorites is a deduplicated, insertion-ordered set of saved menu items.
type Favorites struct {
	mu        sync.Mutex
	key       string
	snapshots storage.SnapshotStore

	items []domain.MenuItem
}

func NewFavorites(key string, snapshots storage.SnapshotStore) *Favorites {
	f := &Favorites{key: key, snapshots: snapshots}
	f.restore()
	return f
}

func (f *Favorites) Add(item domain.MenuItem) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.items {
		if existing.ID == item.ID {
			return
		}
	}
	f.items = append(f.items, item)
	f.persist()
}

func (f *Favorites) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.items {
		if existing.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.persist()
			return
		}
	}
}

func (f *Favorites) IsFavorite(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.items {
		if existing.ID == id {
			return true
		}
	}
	return false
}

func (f *Favorites) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = nil
	f.persist()
}

func (f *Favorites) Items() []domain.MenuItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.MenuItem, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Favorites) persist() {
	payload, err := json.Marshal(f.items)
	if err != nil {
		log.Printf("[%s] failed to serialize snapshot: %v", f.key, err)
		return
	}
	if err := f.snapshots.Save(context.Background(), f.key, payload); err != nil {
		log.Printf("[%s] failed to save snapshot: %v", f.key, err)
	}
}

func (f *Favorites) restore() {
	blob, err := f.snapshots.Load(context.Background(), f.key)
	if err != nil {
		return
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(blob, &items); err != nil {
		log.Printf("[%s] corrupt snapshot, starting empty: %v", f.key, err)
		return
	}
	f.items = items
}
