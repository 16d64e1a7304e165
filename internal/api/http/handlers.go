package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tableside/internal/catalog"
	"tableside/internal/domain"
	"tableside/internal/service"
	"tableside/internal/store"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Catalog   *catalog.Catalog
	Cart      *store.Cart
	Draft     *store.Cart
	Favorites *store.Favorites
	Orders    *store.Orders
	Theme     *store.Theme
	QR        service.QRGenerator
}

func NewHandler(cat *catalog.Catalog, cart, draft *store.Cart, favorites *store.Favorites, orders *store.Orders, theme *store.Theme, qr service.QRGenerator) *Handler {
	return &Handler{
		Catalog:   cat,
		Cart:      cart,
		Draft:     draft,
		Favorites: favorites,
		Orders:    orders,
		Theme:     theme,
		QR:        qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/featured", h.getFeaturedItems).Methods("GET")
	r.HandleFunc("/api/menu/categories/{category}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/menu/items/{id}", h.getMenuItem).Methods("GET")

	h.registerCartRoutes(r, "/api/cart", h.Cart)
	h.registerCartRoutes(r, "/api/draft", h.Draft)

	r.HandleFunc("/api/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/api/favorites", h.clearFavorites).Methods("DELETE")
	r.HandleFunc("/api/favorites/{id}", h.addFavorite).Methods("PUT")
	r.HandleFunc("/api/favorites/{id}", h.removeFavorite).Methods("DELETE")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/eta", h.updateOrderETA).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/theme", h.getTheme).Methods("GET")
	r.HandleFunc("/api/theme/mode", h.setThemeMode).Methods("PUT")
	r.HandleFunc("/api/theme/palette", h.setThemePalette).Methods("PUT")
	r.HandleFunc("/api/theme/palette", h.clearThemePalette).Methods("DELETE")
}

func (h *Handler) registerCartRoutes(r *mux.Router, prefix string, cart *store.Cart) {
	r.HandleFunc(prefix, h.getCart(cart)).Methods("GET")
	r.HandleFunc(prefix, h.clearCart(cart)).Methods("DELETE")
	r.HandleFunc(prefix+"/items", h.addCartItem(cart)).Methods("POST")
	r.HandleFunc(prefix+"/items/{id}", h.updateCartItem(cart)).Methods("PUT")
	r.HandleFunc(prefix+"/items/{id}", h.removeCartItem(cart)).Methods("DELETE")
	r.HandleFunc(prefix+"/items/{id}/note", h.addCartNote(cart)).Methods("PUT")
	r.HandleFunc(prefix+"/checkout", h.checkout(cart)).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.AllItems())
}

func (h *Handler) getFeaturedItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.FeaturedItems())
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(mux.Vars(r)["category"])
	writeJSON(w, http.StatusOK, h.Catalog.ItemsByCategory(category))
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Catalog.ItemByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type cartView struct {
	Items     []domain.CartEntry `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	ItemCount int                `json:"item_count"`
}

func viewOf(cart *store.Cart) cartView {
	entries := cart.Entries()
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	return cartView{Items: entries, Total: cart.Total(), ItemCount: cart.ItemCount()}
}

func (h *Handler) getCart(cart *store.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, viewOf(cart))
	}
}

func (h *Handler) addCartItem(cart *store.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ItemID   string `json:"item_id"`
			Quantity int    `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Quantity < 0 {
			http.Error(w, "Quantity must be positive", http.StatusBadRequest)
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		item, ok := h.Catalog.ItemByID(req.ItemID)
		if !ok {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		cart.AddItem(item, req.Quantity)
		writeJSON(w, http.StatusOK, viewOf(cart))
	}
}

func (h *Handler) updateCartItem(cart *store.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
			return
		}
		cart.UpdateQuantity(mux.Vars(r)["id"], req.Quantity)
		writeJSON(w, http.StatusOK, viewOf(cart))
	}
}

func (h *Handler) removeCartItem(cart *store.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart.RemoveItem(mux.Vars(r)["id"])
		writeJSON(w, http.StatusOK, viewOf(cart))
	}
}

func (h *Handler) addCartNote(cart *store.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Note string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
			return
		}
		cart.AddNote(mux.Vars(r)["id"], req.Note)
		writeJSON(w, http.StatusOK, viewOf(cart))
	}
}

func (h *Handler) clearCart(cart *store.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart.Clear()
		w.WriteHeader(http.StatusNoContent)
	}
}

// checkout converts the container's entries into an order, then clears the
// container. Clearing is the caller's job per the orders-store contract.
func (h *Handler) checkout(cart *store.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CustomerInfo  *domain.CustomerInfo `json:"customer_info"`
			EstimatedTime int                  `json:"estimated_time"`
		}
		// the body is optional; an empty body checks out with defaults
		_ = json.NewDecoder(r.Body).Decode(&req)

		order, err := h.Orders.CreateOrder(cart.Entries(), req.CustomerInfo, req.EstimatedTime)
		if err != nil {
			if errors.Is(err, store.ErrEmptyOrder) {
				http.Error(w, "Cart is empty", http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		cart.Clear()
		writeJSON(w, http.StatusCreated, order)
	}
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	items := h.Favorites.Items()
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Catalog.ItemByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	h.Favorites.Add(item)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	h.Favorites.Remove(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearFavorites(w http.ResponseWriter, r *http.Request) {
	h.Favorites.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}
	writeJSON(w, http.StatusOK, h.Orders.RecentOrders(limit))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Orders.OrderByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.UpdateStatus(mux.Vars(r)["id"], req.Status)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, store.ErrUnknownStatus):
		http.Error(w, "Unknown status", http.StatusBadRequest)
	case errors.Is(err, store.ErrInvalidTransition):
		http.Error(w, "Status transition not allowed", http.StatusUnprocessableEntity)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, order)
	}
}

func (h *Handler) updateOrderETA(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Minutes int `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.UpdateEstimatedTime(mux.Vars(r)["id"], req.Minutes)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, store.ErrTerminalOrder):
		http.Error(w, "Order is already finished", http.StatusUnprocessableEntity)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, order)
	}
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if _, ok := h.Orders.OrderByID(orderID); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	qrCode, err := h.QR.Generate(orderID)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Theme.State())
}

func (h *Handler) setThemeMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode domain.ThemeMode `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Theme.SetMode(req.Mode); err != nil {
		http.Error(w, "Unknown theme mode", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Theme.State())
}

func (h *Handler) setThemePalette(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Colors map[string]string `json:"colors"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.Theme.SetCustomPalette(req.Colors)
	writeJSON(w, http.StatusOK, h.Theme.State())
}

func (h *Handler) clearThemePalette(w http.ResponseWriter, r *http.Request) {
	h.Theme.ClearCustomPalette()
	writeJSON(w, http.StatusOK, h.Theme.State())
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
