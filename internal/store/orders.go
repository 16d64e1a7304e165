package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"tableside/internal/domain"
	"tableside/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrTerminalOrder     = errors.New("order is already in a terminal state")
)

const defaultRecentLimit = 10

// Publisher receives order lifecycle events. A nil publisher disables
// publishing.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type OrdersConfig struct {
	Key               string
	Snapshots         storage.SnapshotStore
	Publisher         Publisher
	TaxRate           decimal.Decimal
	DeliveryFee       decimal.Decimal
	DefaultETAMinutes int
	SeedDemoOrders    bool
}

// Orders holds the placed-order history and drives the status state machine.
// Orders are kept most-recent-first.
type Orders struct {
	mu        sync.Mutex
	key       string
	snapshots storage.SnapshotStore
	publisher Publisher

	taxRate     decimal.Decimal
	deliveryFee decimal.Decimal
	defaultETA  int

	orders     []domain.Order
	nextNumber int
}

// ordersSnapshot is the persisted shape. Derived fields on each order were
// frozen at creation, so the whole record is stored as-is.
type ordersSnapshot struct {
	Orders     []domain.Order `json:"orders"`
	NextNumber int            `json:"next_number"`
}

func NewOrders(cfg OrdersConfig) *Orders {
	s := &Orders{
		key:         cfg.Key,
		snapshots:   cfg.Snapshots,
		publisher:   cfg.Publisher,
		taxRate:     cfg.TaxRate,
		deliveryFee: cfg.DeliveryFee,
		defaultETA:  cfg.DefaultETAMinutes,
		nextNumber:  1001,
	}
	if s.defaultETA <= 0 {
		s.defaultETA = 15
	}
	if !s.restore() && cfg.SeedDemoOrders {
		s.seed()
	}
	return s
}

// CreateOrder snapshots the given entries into an immutable order. The caller
// owns clearing the source cart afterwards; this store never reaches into it.
func (s *Orders) CreateOrder(entries []domain.CartEntry, info *domain.CustomerInfo, etaMinutes int) (domain.Order, error) {
	if len(entries) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	items := make([]domain.CartEntry, len(entries))
	copy(items, entries)

	subtotal := decimal.Zero
	for _, entry := range items {
		subtotal = subtotal.Add(entry.Item.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
	}
	tax := subtotal.Mul(s.taxRate).Round(2)
	total := subtotal.Add(tax).Add(s.deliveryFee)

	if etaMinutes <= 0 {
		etaMinutes = s.defaultETA
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := domain.Order{
		ID:            uuid.NewString(),
		OrderNumber:   fmt.Sprintf("ORD-%d", s.nextNumber),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		DeliveryFee:   s.deliveryFee,
		Total:         total,
		Status:        domain.StatusPending,
		OrderDate:     time.Now(),
		EstimatedTime: etaMinutes,
		CustomerInfo:  info,
	}
	s.nextNumber++
	s.orders = append([]domain.Order{order}, s.orders...)
	s.persist()
	s.publish(domain.EventOrderCreated, order)

	return order, nil
}

// UpdateStatus applies a forward-only transition. Terminal orders never move
// again; illegal edges are rejected, not silently applied.
func (s *Orders) UpdateStatus(orderID string, next domain.Status) (domain.Order, error) {
	if !next.Valid() {
		return domain.Order{}, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !s.orders[i].Status.CanTransitionTo(next) {
			return domain.Order{}, ErrInvalidTransition
		}
		s.orders[i].Status = next
		if next == domain.StatusReady || next.Terminal() {
			s.orders[i].EstimatedTime = 0
		}
		order := s.orders[i]
		s.persist()
		s.publish(domain.EventStatusChanged, order)
		return order, nil
	}
	return domain.Order{}, ErrOrderNotFound
}

// UpdateEstimatedTime adjusts the remaining minutes on a non-terminal order.
func (s *Orders) UpdateEstimatedTime(orderID string, minutes int) (domain.Order, error) {
	if minutes < 0 {
		minutes = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if s.orders[i].Status.Terminal() {
			return domain.Order{}, ErrTerminalOrder
		}
		s.orders[i].EstimatedTime = minutes
		order := s.orders[i]
		s.persist()
		return order, nil
	}
	return domain.Order{}, ErrOrderNotFound
}

func (s *Orders) OrderByID(orderID string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == orderID {
			return order, true
		}
	}
	return domain.Order{}, false
}

// RecentOrders returns up to limit orders, newest first. Non-positive limit
// falls back to the default of 10.
func (s *Orders) RecentOrders(limit int) []domain.Order {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if limit > len(s.orders) {
		limit = len(s.orders)
	}
	out := make([]domain.Order, limit)
	copy(out, s.orders[:limit])
	return out
}

func (s *Orders) publish(eventType string, order domain.Order) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(context.Background(), domain.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   time.Now(),
	})
}

func (s *Orders) persist() {
	payload, err := json.Marshal(ordersSnapshot{Orders: s.orders, NextNumber: s.nextNumber})
	if err != nil {
		log.Printf("[%s] failed to serialize snapshot: %v", s.key, err)
		return
	}
	if err := s.snapshots.Save(context.Background(), s.key, payload); err != nil {
		log.Printf("[%s] failed to save snapshot: %v", s.key, err)
	}
}

func (s *Orders) restore() bool {
	blob, err := s.snapshots.Load(context.Background(), s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Printf("[%s] failed to load snapshot, starting empty: %v", s.key, err)
		}
		return false
	}
	var snap ordersSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Printf("[%s] corrupt snapshot, starting empty: %v", s.key, err)
		return false
	}
	s.orders = snap.Orders
	if snap.NextNumber > s.nextNumber {
		s.nextNumber = snap.NextNumber
	}
	return true
}

// seed installs example history on first run so the order views are not
// empty. Demo data only; skipped entirely once a snapshot exists.
func (s *Orders) seed() {
	now := time.Now()
	menu := map[string]domain.MenuItem{}
	for _, item := range demoMenuItems() {
		menu[item.ID] = item
	}

	delivered := domain.Order{
		ID:          uuid.NewString(),
		OrderNumber: fmt.Sprintf("ORD-%d", s.nextNumber),
		Items: []domain.CartEntry{
			{Item: menu["margherita"], Quantity: 1},
			{Item: menu["lemonade"], Quantity: 2},
		},
		Status:    domain.StatusDelivered,
		OrderDate: now.Add(-48 * time.Hour),
	}
	s.nextNumber++

	preparing := domain.Order{
		ID:          uuid.NewString(),
		OrderNumber: fmt.Sprintf("ORD-%d", s.nextNumber),
		Items: []domain.CartEntry{
			{Item: menu["tiramisu"], Quantity: 1, Notes: "Birthday candle please"},
		},
		Status:        domain.StatusPreparing,
		OrderDate:     now.Add(-10 * time.Minute),
		EstimatedTime: 10,
	}
	s.nextNumber++

	for _, order := range []*domain.Order{&delivered, &preparing} {
		subtotal := decimal.Zero
		for _, entry := range order.Items {
			subtotal = subtotal.Add(entry.Item.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
		}
		order.Subtotal = subtotal
		order.Tax = subtotal.Mul(s.taxRate).Round(2)
		order.DeliveryFee = s.deliveryFee
		order.Total = subtotal.Add(order.Tax).Add(s.deliveryFee)
	}

	s.orders = []domain.Order{preparing, delivered}
	s.persist()
}

func demoMenuItems() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "margherita", Name: "Pizza Margherita", Price: decimal.RequireFromString("10.00"), Category: domain.CategoryMains},
		{ID: "lemonade", Name: "House Lemonade", Price: decimal.RequireFromString("3.50"), Category: domain.CategoryDrinks},
		{ID: "tiramisu", Name: "Tiramisu", Price: decimal.RequireFromString("7.00"), Category: domain.CategoryDesserts},
	}
}
