// Package store owns the whole storefront state: catalog, cart, session,
// order history and the two bits of UI state that ride along with them. All
// writes go through one Manager so every mutation is a single critical
// section, and every mutation re-persists the slice it touched as a JSON
// snapshot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freshmart/internal/catalog"
	"freshmart/internal/models"
	"freshmart/internal/storage"
)

const mockAddress = "123, Green Street, City"

const persistTimeout = 3 * time.Second

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantIndex     = errors.New("variant index out of range")
	ErrQuantity         = errors.New("quantity must be at least 1")
	ErrPaymentMethod    = errors.New("invalid payment method")
	ErrMissingVariants  = errors.New("product needs at least one variant")
	ErrMissingProductID = errors.New("product id is required")
)

// Manager is the single owning controller of the storefront state. Reads are
// safe from any goroutine; writes are serialized by the internal mutex.
type Manager struct {
	mu         sync.RWMutex
	snapshots  storage.Store
	logger     zerolog.Logger
	adminEmail string

	products    []models.Product
	cart        []models.CartItem
	user        *models.User
	orders      []models.Order
	searchQuery string
	cartOpen    bool
}

// New builds a Manager on top of the given snapshot store. Call Load before
// serving requests.
func New(snapshots storage.Store, adminEmail string, logger zerolog.Logger) *Manager {
	return &Manager{
		snapshots:  snapshots,
		logger:     logger,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

// Load hydrates state from persisted snapshots. A missing products blob falls
// back to the seed catalog; missing cart, user or orders blobs mean empty.
// A blob that exists but cannot be decoded is an error: silently discarding
// someone's order history is worse than refusing to start.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.loadSlice(ctx, storage.KeyProducts, &m.products); err != nil {
		return err
	}
	if m.products == nil {
		m.products = catalog.Products()
		m.logger.Info().Int("count", len(m.products)).Msg("catalog seeded from defaults")
	}

	if err := m.loadSlice(ctx, storage.KeyCart, &m.cart); err != nil {
		return err
	}
	if m.cart == nil {
		m.cart = []models.CartItem{}
	}

	if err := m.loadSlice(ctx, storage.KeyOrders, &m.orders); err != nil {
		return err
	}
	if m.orders == nil {
		m.orders = []models.Order{}
	}

	blob, err := m.snapshots.Get(ctx, storage.KeyUser)
	if err == nil {
		var user models.User
		if err := json.Unmarshal(blob, &user); err != nil {
			return err
		}
		m.user = &user
	} else if err != storage.ErrNotFound {
		return err
	}

	m.logger.Info().
		Int("products", len(m.products)).
		Int("cartLines", len(m.cart)).
		Int("orders", len(m.orders)).
		Bool("session", m.user != nil).
		Msg("state loaded")
	return nil
}

func (m *Manager) loadSlice(ctx context.Context, key string, target interface{}) error {
	blob, err := m.snapshots.Get(ctx, key)
	if err == storage.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(blob, target)
}

/* =========================
   CART
========================= */

// AddToCart merges quantity into an existing line with the same
// (productID, variantIndex) identity, or appends a new line frozen from the
// current catalog entry. It also opens the cart drawer. There is no stock
// ceiling: an out-of-stock product only disables the UI affordance.
func (m *Manager) AddToCart(productID string, variantIndex, quantity int) error {
	if quantity < 1 {
		return ErrQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.findProduct(productID)
	if !ok {
		return ErrProductNotFound
	}
	if variantIndex < 0 || variantIndex >= len(product.Variants) {
		return ErrVariantIndex
	}

	merged := false
	for i := range m.cart {
		if m.cart[i].Matches(productID, variantIndex) {
			m.cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		m.cart = append(m.cart, models.CartItem{
			Product:              product.Clone(),
			SelectedVariantIndex: variantIndex,
			Quantity:             quantity,
		})
	}
	m.cartOpen = true

	m.persist(storage.KeyCart, m.cart)
	return nil
}

// RemoveFromCart drops the line with the given identity. Removing an absent
// line is a no-op.
func (m *Manager) RemoveFromCart(productID string, variantIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLineLocked(productID, variantIndex)
	m.persist(storage.KeyCart, m.cart)
}

// UpdateQuantity sets a line's quantity to exactly quantity. Zero or negative
// removes the line; an absent line is left alone.
func (m *Manager) UpdateQuantity(productID string, variantIndex, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLineLocked(productID, variantIndex)
	} else {
		for i := range m.cart {
			if m.cart[i].Matches(productID, variantIndex) {
				m.cart[i].Quantity = quantity
				break
			}
		}
	}
	m.persist(storage.KeyCart, m.cart)
}

// ClearCart empties the cart unconditionally.
func (m *Manager) ClearCart() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cart = []models.CartItem{}
	m.persist(storage.KeyCart, m.cart)
}

// ToggleCart sets the cart-drawer visibility flag. Pure UI state.
func (m *Manager) ToggleCart(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cartOpen = open
}

// SetSearchQuery stores the listing filter string. Filtering itself happens
// on the read side, never here.
func (m *Manager) SetSearchQuery(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchQuery = query
}

func (m *Manager) removeLineLocked(productID string, variantIndex int) {
	kept := m.cart[:0]
	for _, line := range m.cart {
		if !line.Matches(productID, variantIndex) {
			kept = append(kept, line)
		}
	}
	m.cart = kept
}

/* =========================
   SESSION
========================= */

// Login creates the mock session identity. There is no password: the admin
// capability flag comes from comparing the email to the configured
// administrator address, and callers gate admin operations on it.
func (m *Manager) Login(email, name string) models.User {
	email = strings.ToLower(strings.TrimSpace(email))

	m.mu.Lock()
	defer m.mu.Unlock()

	user := models.User{
		Name:    strings.TrimSpace(name),
		Email:   email,
		Address: mockAddress,
		IsAdmin: email != "" && email == m.adminEmail,
	}
	m.user = &user

	m.persist(storage.KeyUser, user)
	m.logger.Info().Str("email", email).Bool("admin", user.IsAdmin).Msg("user logged in")
	return user
}

// Logout clears the session both in memory and in the snapshot store.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := m.snapshots.Delete(ctx, storage.KeyUser); err != nil {
		m.logger.Warn().Err(err).Str("key", storage.KeyUser).Msg("snapshot delete failed")
	}
	m.logger.Info().Msg("user logged out")
}

/* =========================
   ORDERS
========================= */

// PlaceOrder snapshots the cart into a new order, prepends it to history and
// clears the cart, all in one critical section. The total is recomputed from
// the selected variant prices at call time. An empty cart yields a degenerate
// zero-total order rather than an error; rejecting that is the caller's job.
func (m *Manager) PlaceOrder(paymentMethod, address string) (models.Order, error) {
	if !models.ValidPaymentMethod(paymentMethod) {
		return models.Order{}, ErrPaymentMethod
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]models.CartItem, 0, len(m.cart))
	total := 0.0
	for _, line := range m.cart {
		items = append(items, line.Clone())
		total += line.LineTotal()
	}

	order := models.Order{
		ID:            uuid.NewString(),
		Items:         items,
		Total:         total,
		Date:          time.Now(),
		Status:        models.OrderStatusPending,
		PaymentMethod: paymentMethod,
		Address:       strings.TrimSpace(address),
	}

	m.orders = append([]models.Order{order}, m.orders...)
	m.cart = []models.CartItem{}

	m.persist(storage.KeyOrders, m.orders)
	m.persist(storage.KeyCart, m.cart)

	m.logger.Info().
		Str("orderId", order.ID).
		Float64("total", order.Total).
		Str("paymentMethod", paymentMethod).
		Int("items", len(order.Items)).
		Msg("order placed")
	return order, nil
}

/* =========================
   CATALOG (admin)
========================= */

// AddProduct prepends a product to the catalog. The manager stays
// authorization-agnostic; admin gating happens at the HTTP edge.
func (m *Manager) AddProduct(product models.Product) error {
	if strings.TrimSpace(product.ID) == "" {
		return ErrMissingProductID
	}
	if len(product.Variants) == 0 {
		return ErrMissingVariants
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append([]models.Product{product.Clone()}, m.products...)
	m.persist(storage.KeyProducts, m.products)
	return nil
}

// UpdateProduct replaces the catalog entry with a matching id. A miss is a
// silent no-op. Existing cart lines keep the product fields they were frozen
// with.
func (m *Manager) UpdateProduct(product models.Product) error {
	if len(product.Variants) == 0 {
		return ErrMissingVariants
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == product.ID {
			m.products[i] = product.Clone()
			break
		}
	}
	m.persist(storage.KeyProducts, m.products)
	return nil
}

// DeleteProduct removes the catalog entry with the given id, preserving the
// relative order of the rest. Cart lines and order history are deliberately
// left untouched: they hold frozen copies.
func (m *Manager) DeleteProduct(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.products[:0]
	for _, p := range m.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	m.products = kept
	m.persist(storage.KeyProducts, m.products)
}

/* =========================
   READS
========================= */

// Products returns a copy of the catalog in its current order.
func (m *Manager) Products() []models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Product looks up a single catalog entry by id.
func (m *Manager) Product(productID string) (models.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.findProduct(productID)
	if !ok {
		return models.Product{}, false
	}
	return p.Clone(), true
}

// Cart returns a copy of the current cart lines.
func (m *Manager) Cart() []models.CartItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.CartItem, len(m.cart))
	copy(out, m.cart)
	return out
}

// Orders returns the order history, newest first.
func (m *Manager) Orders() []models.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

// CurrentUser returns the session identity, or false when logged out.
func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// SearchQuery returns the stored listing filter string.
func (m *Manager) SearchQuery() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.searchQuery
}

// CartOpen reports the cart-drawer visibility flag.
func (m *Manager) CartOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cartOpen
}

func (m *Manager) findProduct(productID string) (models.Product, bool) {
	for _, p := range m.products {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}

// persist writes one slice snapshot. A write failure is degraded-but-
// continuable: the in-memory state is still authoritative, so log and move
// on. Callers hold the write lock.
func (m *Manager) persist(key string, value interface{}) {
	blob, err := json.Marshal(value)
	if err != nil {
		m.logger.Error().Err(err).Str("key", key).Msg("snapshot marshal failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := m.snapshots.Set(ctx, key, blob); err != nil {
		m.logger.Warn().Err(err).Str("key", key).Msg("snapshot write failed")
	}
}
