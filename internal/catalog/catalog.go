package catalog

import "tableside/internal/domain"

// Catalog is read-only lookup over the menu. It never mutates the records it
// is given and never errors; unknown lookups come back as absent.
type Catalog struct {
	items []domain.MenuItem
	byID  map[string]domain.MenuItem
}

func New(items []domain.MenuItem) *Catalog {
	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{items: items, byID: byID}
}

func (c *Catalog) AllItems() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) ItemsByCategory(category domain.Category) []domain.MenuItem {
	out := []domain.MenuItem{}
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) ItemByID(id string) (domain.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) FeaturedItems() []domain.MenuItem {
	out := []domain.MenuItem{}
	for _, item := range c.items {
		if item.Featured {
			out = append(out, item)
		}
	}
	return out
}
