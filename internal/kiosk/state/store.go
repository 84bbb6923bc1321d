package state

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cafe-kiosk/internal/kiosk/core"
	"cafe-kiosk/internal/kiosk/domain/models"
)

// Store is the single authority over the kiosk state: the menu catalog,
// the active cart, the placed orders and the token counter. One mutex
// serializes every operation, so token assignment, order append and cart
// clear always happen as one step.
type Store struct {
	mu        sync.Mutex
	menu      []models.MenuItem
	cart      []models.CartItem
	orders    []models.Order
	nextToken int

	now func() time.Time
}

func New(tokenStart int, menu []models.MenuItem) *Store {
	if tokenStart <= 0 {
		tokenStart = core.DefaultTokenStart
	}
	s := &Store{
		nextToken: tokenStart,
		now:       time.Now,
	}
	for _, item := range menu {
		s.menu = append(s.menu, cloneMenuItem(item))
	}
	return s
}

// Menu returns a copy of the catalog.
func (s *Store) Menu() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.MenuItem, 0, len(s.menu))
	for _, item := range s.menu {
		items = append(items, cloneMenuItem(item))
	}
	return items
}

// MenuItem returns the catalog entry with the given id.
func (s *Store) MenuItem(itemID string) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.menu {
		if item.ID == itemID {
			return cloneMenuItem(item), nil
		}
	}
	return models.MenuItem{}, core.ErrMenuItemNotFound
}

// AddMenuItem appends a new catalog entry under a freshly generated id.
// Any id supplied by the caller is ignored.
func (s *Store) AddMenuItem(item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = "menu-" + uuid.NewString()
	s.menu = append(s.menu, cloneMenuItem(item))
	return item
}

// UpdateMenuItem replaces the catalog entry whose id matches item.ID.
func (s *Store) UpdateMenuItem(item models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menu {
		if s.menu[i].ID == item.ID {
			s.menu[i] = cloneMenuItem(item)
			return nil
		}
	}
	return core.ErrMenuItemNotFound
}

// DeleteMenuItem removes the catalog entry with the given id. Cart lines
// and orders hold their own copies, so they are unaffected.
func (s *Store) DeleteMenuItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menu {
		if s.menu[i].ID == itemID {
			s.menu = append(s.menu[:i], s.menu[i+1:]...)
			return nil
		}
	}
	return core.ErrMenuItemNotFound
}

// Cart returns a copy of the current cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, 0, len(s.cart))
	for _, line := range s.cart {
		items = append(items, cloneCartItem(line))
	}
	return items
}

// CartTotal recomputes the cart total from the current lines.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() float64 {
	total := 0.0
	for _, line := range s.cart {
		total += line.LineTotal()
	}
	return total
}

// lineKey identifies a cart line: the menu item id plus the sorted set of
// selected addon ids. Two adds with the same key merge into one line.
func lineKey(itemID string, addons []models.Addon) string {
	ids := make([]string, 0, len(addons))
	for _, a := range addons {
		ids = append(ids, a.ID)
	}
	sort.Strings(ids)
	return itemID + "|" + strings.Join(ids, ",")
}

// AddToCart adds quantity of the given menu item with the selected addons.
// If a line with the same item and addon selection already exists, its
// quantity is incremented; otherwise a new line is appended holding a value
// copy of the catalog entry.
func (s *Store) AddToCart(itemID string, quantity int, addonIDs []string, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return core.ErrInvalidQuantity
	}

	var item *models.MenuItem
	for i := range s.menu {
		if s.menu[i].ID == itemID {
			item = &s.menu[i]
			break
		}
	}
	if item == nil {
		return core.ErrMenuItemNotFound
	}

	selected, err := resolveAddons(*item, addonIDs)
	if err != nil {
		return err
	}

	key := lineKey(itemID, selected)
	for i := range s.cart {
		if lineKey(s.cart[i].MenuItem.ID, s.cart[i].SelectedAddons) == key {
			s.cart[i].Quantity += quantity
			return nil
		}
	}

	s.cart = append(s.cart, models.CartItem{
		MenuItem:       cloneMenuItem(*item),
		Quantity:       quantity,
		SelectedAddons: selected,
		Notes:          notes,
	})
	return nil
}

func resolveAddons(item models.MenuItem, addonIDs []string) ([]models.Addon, error) {
	if len(addonIDs) == 0 {
		return nil, nil
	}
	// The selection is a set: a repeated id counts once.
	seen := make(map[string]bool, len(addonIDs))
	selected := make([]models.Addon, 0, len(addonIDs))
	for _, id := range addonIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		found := false
		for _, a := range item.Addons {
			if a.ID == id {
				selected = append(selected, a)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", core.ErrInvalidAddon, id)
		}
	}
	return selected, nil
}

// UpdateCartItemQuantity sets the quantity of every line holding the given
// menu item. A non-positive quantity removes those lines.
func (s *Store) UpdateCartItemQuantity(itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	if quantity <= 0 {
		kept := s.cart[:0]
		for _, line := range s.cart {
			if line.MenuItem.ID == itemID {
				found = true
				continue
			}
			kept = append(kept, line)
		}
		s.cart = kept
	} else {
		for i := range s.cart {
			if s.cart[i].MenuItem.ID == itemID {
				s.cart[i].Quantity = quantity
				found = true
			}
		}
	}

	if !found {
		return core.ErrCartItemNotFound
	}
	return nil
}

// RemoveFromCart removes every line holding the given menu item.
func (s *Store) RemoveFromCart(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	found := false
	for _, line := range s.cart {
		if line.MenuItem.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, line)
	}
	s.cart = kept

	if !found {
		return core.ErrCartItemNotFound
	}
	return nil
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// CreateOrder snapshots the cart into a new order: assigns an id and the
// current token, advances the counter, stamps the creation time and clears
// the cart. All of it happens under one lock, so no partial state is ever
// observable. An empty cart is structurally permitted here; callers that
// want to forbid it check before calling.
func (s *Store) CreateOrder(orderType models.OrderType, paymentMethod models.PaymentMethod, notes string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !orderType.Valid() {
		return models.Order{}, core.ErrInvalidOrderType
	}
	if !paymentMethod.Valid() {
		return models.Order{}, core.ErrInvalidPaymentMethod
	}

	items := make([]models.CartItem, 0, len(s.cart))
	for _, line := range s.cart {
		items = append(items, cloneCartItem(line))
	}

	order := models.Order{
		ID:            "ORD-" + uuid.NewString(),
		Token:         s.nextToken,
		Items:         items,
		Total:         s.cartTotalLocked(),
		Status:        models.StatusPending,
		OrderType:     orderType,
		PaymentMethod: paymentMethod,
		CreatedAt:     s.now(),
		Notes:         notes,
	}

	s.nextToken++
	// Most recent first, like the dashboard expects.
	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = nil

	return cloneOrder(order), nil
}

// Orders returns copies of all placed orders, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, cloneOrder(o))
	}
	return orders
}

// Order returns the order with the given id.
func (s *Store) Order(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, core.ErrOrderNotFound
}

// UpdateOrderStatus sets the status of the matching order. Jumps between
// non-terminal statuses are allowed; Completed is terminal and cannot be
// left. Only the status field changes.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.Valid() {
		return core.ErrInvalidStatus
	}

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			if s.orders[i].Status == models.StatusCompleted {
				return core.ErrOrderCompleted
			}
			s.orders[i].Status = status
			return nil
		}
	}
	return core.ErrOrderNotFound
}

func cloneMenuItem(item models.MenuItem) models.MenuItem {
	if item.Addons != nil {
		item.Addons = append([]models.Addon(nil), item.Addons...)
	}
	return item
}

func cloneCartItem(line models.CartItem) models.CartItem {
	line.MenuItem = cloneMenuItem(line.MenuItem)
	if line.SelectedAddons != nil {
		line.SelectedAddons = append([]models.Addon(nil), line.SelectedAddons...)
	}
	return line
}

func cloneOrder(o models.Order) models.Order {
	items := make([]models.CartItem, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, cloneCartItem(line))
	}
	o.Items = items
	return o
}
