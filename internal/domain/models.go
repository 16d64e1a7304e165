package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryStarters Category = "starters"
	CategoryMains    Category = "mains"
	CategoryDrinks   Category = "drinks"
	CategoryDesserts Category = "desserts"
)

// MenuItem is an immutable catalog record. Per-selection state (quantity,
// notes) lives on CartEntry, never here.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    Category        `json:"category"`
	Featured    bool            `json:"featured,omitempty"`
}

type CartEntry struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
	Notes    string   `json:"notes,omitempty"`
}

type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Table string `json:"table,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Order is frozen at creation except for Status and EstimatedTime.
type Order struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Items         []CartEntry     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	OrderDate     time.Time       `json:"order_date"`
	EstimatedTime int             `json:"estimated_time"`
	CustomerInfo  *CustomerInfo   `json:"customer_info,omitempty"`
}

type ThemeMode string

const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

type ThemeVariant string

const (
	ThemeVariantLight ThemeVariant = "light"
	ThemeVariantDark  ThemeVariant = "dark"
)

// ThemeState is the resolved visual state handed to the applier. Variant and
// Dark are derived from Mode plus the system preference at read time.
type ThemeState struct {
	Mode         ThemeMode         `json:"mode"`
	Variant      ThemeVariant      `json:"variant"`
	CustomColors map[string]string `json:"custom_colors,omitempty"`
	Dark         bool              `json:"dark"`
}

type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      Status          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Timestamp   time.Time       `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)
