package catalog

import (
	"testing"

	"tableside/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "soup", Name: "Soup", Price: decimal.RequireFromString("5.00"), Category: domain.CategoryStarters},
		{ID: "pizza", Name: "Pizza", Price: decimal.RequireFromString("10.00"), Category: domain.CategoryMains, Featured: true},
		{ID: "cola", Name: "Cola", Price: decimal.RequireFromString("2.50"), Category: domain.CategoryDrinks},
		{ID: "cake", Name: "Cake", Price: decimal.RequireFromString("6.00"), Category: domain.CategoryDesserts, Featured: true},
	}
}

func TestCatalogAllItems(t *testing.T) {
	cat := New(testMenu())

	items := cat.AllItems()
	assert.Len(t, items, 4)
	// insertion order preserved
	assert.Equal(t, "soup", items[0].ID)
	assert.Equal(t, "cake", items[3].ID)
}

func TestCatalogItemsByCategory(t *testing.T) {
	cat := New(testMenu())

	tests := []struct {
		name     string
		category domain.Category
		wantIDs  []string
	}{
		{"mains", domain.CategoryMains, []string{"pizza"}},
		{"drinks", domain.CategoryDrinks, []string{"cola"}},
		{"unknown category is empty, not an error", domain.Category("sides"), []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			items := cat.ItemsByCategory(testCase.category)
			ids := []string{}
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, testCase.wantIDs, ids)
		})
	}
}

func TestCatalogItemByID(t *testing.T) {
	cat := New(testMenu())

	item, ok := cat.ItemByID("pizza")
	assert.True(t, ok)
	assert.Equal(t, "Pizza", item.Name)

	_, ok = cat.ItemByID("nope")
	assert.False(t, ok)
}

func TestCatalogFeaturedItems(t *testing.T) {
	cat := New(testMenu())

	featured := cat.FeaturedItems()
	assert.Len(t, featured, 2)
	for _, item := range featured {
		assert.True(t, item.Featured)
	}
}

func TestDefaultMenuResolvesThroughCatalog(t *testing.T) {
	cat := New(DefaultMenu())

	assert.NotEmpty(t, cat.AllItems())
	assert.NotEmpty(t, cat.FeaturedItems())
	for _, category := range []domain.Category{domain.CategoryStarters, domain.CategoryMains, domain.CategoryDrinks, domain.CategoryDesserts} {
		assert.NotEmpty(t, cat.ItemsByCategory(category), string(category))
	}
}
