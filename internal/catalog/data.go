package catalog

import (
	"tableside/internal/domain"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultMenu is the static catalog served when no external menu source is
// configured.
func DefaultMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "bruschetta", Name: "Bruschetta", Description: "Grilled bread, tomato, basil, olive oil", Price: price("6.50"), Image: "/images/bruschetta.jpg", Category: domain.CategoryStarters, Featured: true},
		{ID: "calamari", Name: "Crispy Calamari", Description: "Fried squid rings with lemon aioli", Price: price("9.00"), Image: "/images/calamari.jpg", Category: domain.CategoryStarters},
		{ID: "soup-of-day", Name: "Soup of the Day", Description: "Ask your server", Price: price("5.50"), Image: "/images/soup.jpg", Category: domain.CategoryStarters},
		{ID: "margherita", Name: "Pizza Margherita", Description: "San Marzano tomato, mozzarella, basil", Price: price("10.00"), Image: "/images/margherita.jpg", Category: domain.CategoryMains, Featured: true},
		{ID: "carbonara", Name: "Spaghetti Carbonara", Description: "Guanciale, egg, pecorino", Price: price("12.50"), Image: "/images/carbonara.jpg", Category: domain.CategoryMains},
		{ID: "ribeye", Name: "Ribeye Steak", Description: "300g, herb butter, fries", Price: price("24.00"), Image: "/images/ribeye.jpg", Category: domain.CategoryMains, Featured: true},
		{ID: "grilled-salmon", Name: "Grilled Salmon", Description: "Seasonal vegetables, lemon butter", Price: price("18.50"), Image: "/images/salmon.jpg", Category: domain.CategoryMains},
		{ID: "lemonade", Name: "House Lemonade", Description: "Fresh squeezed, mint", Price: price("3.50"), Image: "/images/lemonade.jpg", Category: domain.CategoryDrinks},
		{ID: "espresso", Name: "Espresso", Description: "Double shot", Price: price("2.50"), Image: "/images/espresso.jpg", Category: domain.CategoryDrinks},
		{ID: "house-red", Name: "House Red Wine", Description: "Glass, 150ml", Price: price("6.00"), Image: "/images/red-wine.jpg", Category: domain.CategoryDrinks},
		{ID: "tiramisu", Name: "Tiramisu", Description: "Espresso-soaked savoiardi, mascarpone", Price: price("7.00"), Image: "/images/tiramisu.jpg", Category: domain.CategoryDesserts, Featured: true},
		{ID: "panna-cotta", Name: "Panna Cotta", Description: "Vanilla bean, berry coulis", Price: price("6.50"), Image: "/images/panna-cotta.jpg", Category: domain.CategoryDesserts},
	}
}
