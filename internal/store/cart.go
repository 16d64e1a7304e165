package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"tableside/internal/domain"
	"tableside/internal/storage"

	"github.com/shopspring/decimal"
)

const maxNoteLength = 200

// Cart holds a pre-checkout selection. The same type backs both the primary
// cart and the order-draft container; they differ only in snapshot key.
//
// Total and ItemCount are recomputed inside every mutation, so readers never
// observe them stale relative to the entries.
type Cart struct {
	mu        sync.Mutex
	key       string
	snapshots storage.SnapshotStore

	entries   []domain.CartEntry
	total     decimal.Decimal
	itemCount int
}

func NewCart(key string, snapshots storage.SnapshotStore) *Cart {
	c := &Cart{key: key, snapshots: snapshots}
	c.restore()
	return c
}

// AddItem inserts a new entry or merges into the existing one for the same
// item ID. Non-positive quantities are ignored.
func (c *Cart) AddItem(item domain.MenuItem, quantity int) {
	if quantity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := false
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.entries = append(c.entries, domain.CartEntry{Item: item, Quantity: quantity})
	}
	c.recompute()
	c.persist()
}

// UpdateQuantity sets an entry's quantity outright. Zero or negative removes
// the entry, matching RemoveItem.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(id)
	} else {
		for i := range c.entries {
			if c.entries[i].Item.ID == id {
				c.entries[i].Quantity = quantity
				break
			}
		}
	}
	c.recompute()
	c.persist()
}

func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(id)
	c.recompute()
	c.persist()
}

// AddNote attaches or overwrites free-text notes on an existing entry. Absent
// entries are a no-op; overlong notes are clamped.
func (c *Cart) AddNote(id, text string) {
	if len(text) > maxNoteLength {
		text = text[:maxNoteLength]
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Item.ID == id {
			c.entries[i].Notes = text
			c.persist()
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.recompute()
	c.persist()
}

func (c *Cart) Quantity(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.entries {
		if entry.Item.ID == id {
			return entry.Quantity
		}
	}
	return 0
}

func (c *Cart) Entries() []domain.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCount
}

func (c *Cart) removeLocked(id string) {
	for i := range c.entries {
		if c.entries[i].Item.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

func (c *Cart) recompute() {
	total := decimal.Zero
	count := 0
	for _, entry := range c.entries {
		total = total.Add(entry.Item.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
		count += entry.Quantity
	}
	c.total = total
	c.itemCount = count
}

// persist writes the entries (not the derived fields) best-effort. Callers
// hold the mutex.
func (c *Cart) persist() {
	payload, err := json.Marshal(c.entries)
	if err != nil {
		log.Printf("[%s] failed to serialize snapshot: %v", c.key, err)
		return
	}
	if err := c.snapshots.Save(context.Background(), c.key, payload); err != nil {
		log.Printf("[%s] failed to save snapshot: %v", c.key, err)
	}
}

// restore loads the persisted entries. Missing or corrupt snapshots degrade
// to an empty cart.
func (c *Cart) restore() {
	blob, err := c.snapshots.Load(context.Background(), c.key)
	if err != nil {
		c.recompute()
		return
	}
	var entries []domain.CartEntry
	if err := json.Unmarshal(blob, &entries); err != nil {
		log.Printf("[%s] corrupt snapshot, starting empty: %v", c.key, err)
		c.recompute()
		return
	}
	c.entries = entries
	c.recompute()
}
