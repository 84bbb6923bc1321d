package service

import (
	"fmt"
	"sort"

	"cafe-kiosk/internal/kiosk/core"
	"cafe-kiosk/internal/kiosk/domain/dto"
	"cafe-kiosk/internal/kiosk/domain/models"
	"cafe-kiosk/internal/kiosk/state"
	"cafe-kiosk/pkg/logger"
)

// KioskService validates requests and funnels every mutation through the
// state store.
type KioskService struct {
	store  *state.Store
	params core.KioskParams
	mylog  *logger.Logger
}

func New(store *state.Store, params core.KioskParams, mylog *logger.Logger) *KioskService {
	if params.MaxQuantity <= 0 {
		params.MaxQuantity = core.MaxItemQuantity
	}
	if params.MaxNotesLen <= 0 {
		params.MaxNotesLen = core.MaxNotesLen
	}
	return &KioskService{
		store:  store,
		params: params,
		mylog:  mylog,
	}
}

// Menu returns the catalog, optionally filtered by category and
// availability.
func (ks *KioskService) Menu(category string, availableOnly bool) []models.MenuItem {
	items := ks.store.Menu()
	if category == "" && !availableOnly {
		return items
	}

	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if availableOnly && !item.Available {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func (ks *KioskService) Categories() []string {
	return append([]string(nil), models.Categories...)
}

func (ks *KioskService) AddMenuItem(req dto.MenuItemRequest) (models.MenuItem, error) {
	if err := validateMenuItem(req); err != nil {
		return models.MenuItem{}, err
	}

	item := ks.store.AddMenuItem(menuItemFromRequest(req))
	ks.mylog.Action("menu_item_added").Info("Menu item added", "item_id", item.ID, "name", item.Name)
	return item, nil
}

func (ks *KioskService) UpdateMenuItem(itemID string, req dto.MenuItemRequest) (models.MenuItem, error) {
	if err := validateMenuItem(req); err != nil {
		return models.MenuItem{}, err
	}

	item := menuItemFromRequest(req)
	item.ID = itemID
	if err := ks.store.UpdateMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}
	ks.mylog.Action("menu_item_updated").Info("Menu item updated", "item_id", itemID)
	return item, nil
}

func (ks *KioskService) DeleteMenuItem(itemID string) error {
	if err := ks.store.DeleteMenuItem(itemID); err != nil {
		return err
	}
	ks.mylog.Action("menu_item_deleted").Info("Menu item deleted", "item_id", itemID)
	return nil
}

func validateMenuItem(req dto.MenuItemRequest) error {
	nameLen := len(req.Name)
	if nameLen == 0 {
		return fmt.Errorf("invalid name: %w", core.ErrFieldIsEmpty)
	}
	if nameLen < core.MinItemNameLen || nameLen > core.MaxItemNameLen {
		return fmt.Errorf("name length: %d, must be in range [%d, %d]", nameLen, core.MinItemNameLen, core.MaxItemNameLen)
	}
	if req.Price < 0 {
		return fmt.Errorf("price must be non-negative: %f", req.Price)
	}
	if !models.ValidCategory(req.Category) {
		return fmt.Errorf("%w: %s", core.ErrInvalidCategory, req.Category)
	}
	for _, a := range req.Addons {
		if a.Name == "" {
			return fmt.Errorf("invalid addon name: %w", core.ErrFieldIsEmpty)
		}
		if a.Price < 0 {
			return fmt.Errorf("addon price must be non-negative: %f", a.Price)
		}
	}
	return nil
}

func menuItemFromRequest(req dto.MenuItemRequest) models.MenuItem {
	return models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Addons:      req.Addons,
		Available:   req.Available,
	}
}

// Cart returns the current cart lines with the derived total.
func (ks *KioskService) Cart() dto.CartResponse {
	return dto.CartResponse{
		Items: ks.store.Cart(),
		Total: ks.store.CartTotal(),
	}
}

func (ks *KioskService) AddToCart(req dto.AddToCartRequest) error {
	if req.MenuItemID == "" {
		return fmt.Errorf("invalid menu_item_id: %w", core.ErrFieldIsEmpty)
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < core.MinItemQuantity || quantity > ks.params.MaxQuantity {
		return fmt.Errorf("%w: quantity %d must be in range [%d, %d]",
			core.ErrInvalidQuantity, quantity, core.MinItemQuantity, ks.params.MaxQuantity)
	}
	if len(req.Notes) > ks.params.MaxNotesLen {
		return fmt.Errorf("notes length: %d, must not exceed %d", len(req.Notes), ks.params.MaxNotesLen)
	}

	item, err := ks.store.MenuItem(req.MenuItemID)
	if err != nil {
		return err
	}
	if !item.Available {
		return core.ErrItemUnavailable
	}

	if err := ks.store.AddToCart(req.MenuItemID, quantity, req.AddonIDs, req.Notes); err != nil {
		return err
	}
	ks.mylog.Action("cart_item_added").Debug("Item added to cart", "item_id", req.MenuItemID, "quantity", quantity)
	return nil
}

// UpdateCartItemQuantity sets the quantity of the cart line holding the
// given menu item. A non-positive quantity removes the line, so only the
// upper bound is validated here.
func (ks *KioskService) UpdateCartItemQuantity(itemID string, quantity int) error {
	if quantity > ks.params.MaxQuantity {
		return fmt.Errorf("%w: quantity %d must not exceed %d", core.ErrInvalidQuantity, quantity, ks.params.MaxQuantity)
	}
	return ks.store.UpdateCartItemQuantity(itemID, quantity)
}

func (ks *KioskService) RemoveFromCart(itemID string) error {
	return ks.store.RemoveFromCart(itemID)
}

func (ks *KioskService) ClearCart() {
	ks.store.ClearCart()
}

// CreateOrder places an order from the current cart. The store permits an
// empty cart, but the kiosk surface does not.
func (ks *KioskService) CreateOrder(req dto.CreateOrderRequest) (models.Order, error) {
	mylog := ks.mylog.Action("create_order")

	orderType := models.OrderType(req.OrderType)
	if !orderType.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", core.ErrInvalidOrderType, req.OrderType)
	}
	paymentMethod := models.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", core.ErrInvalidPaymentMethod, req.PaymentMethod)
	}
	if len(req.Notes) > ks.params.MaxNotesLen {
		return models.Order{}, fmt.Errorf("notes length: %d, must not exceed %d", len(req.Notes), ks.params.MaxNotesLen)
	}
	if len(ks.store.Cart()) == 0 {
		return models.Order{}, core.ErrEmptyCart
	}

	order, err := ks.store.CreateOrder(orderType, paymentMethod, req.Notes)
	if err != nil {
		mylog.Error("Failed to create order", err)
		return models.Order{}, err
	}

	mylog.Info("Order created", "order_id", order.ID, "token", order.Token, "total", order.Total)
	return order, nil
}

// Orders lists placed orders, most recent first. status filters on an exact
// status; activeOnly keeps everything except Completed.
func (ks *KioskService) Orders(status string, activeOnly bool) ([]models.Order, error) {
	var filter models.OrderStatus
	if status != "" {
		filter = models.OrderStatus(status)
		if !filter.Valid() {
			return nil, fmt.Errorf("%w: %q", core.ErrInvalidStatus, status)
		}
	}

	orders := ks.store.Orders()
	if filter == "" && !activeOnly {
		return orders, nil
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if filter != "" && o.Status != filter {
			continue
		}
		if activeOnly && o.Status == models.StatusCompleted {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

func (ks *KioskService) Order(orderID string) (models.Order, error) {
	return ks.store.Order(orderID)
}

// UpdateOrderStatus moves an order to the requested status, or to the next
// status in the pipeline when target is empty.
func (ks *KioskService) UpdateOrderStatus(orderID, target string) (models.Order, error) {
	mylog := ks.mylog.Action("update_order_status")

	var status models.OrderStatus
	if target == "" {
		order, err := ks.store.Order(orderID)
		if err != nil {
			return models.Order{}, err
		}
		next, ok := order.Status.Next()
		if !ok {
			return models.Order{}, core.ErrOrderCompleted
		}
		status = next
	} else {
		status = models.OrderStatus(target)
	}

	if err := ks.store.UpdateOrderStatus(orderID, status); err != nil {
		return models.Order{}, err
	}

	order, err := ks.store.Order(orderID)
	if err != nil {
		return models.Order{}, err
	}
	mylog.Info("Order status updated", "order_id", orderID, "status", string(status))
	return order, nil
}

// Board returns the public token display queues: preparing and ready
// tokens in ascending order.
func (ks *KioskService) Board() dto.BoardResponse {
	board := dto.BoardResponse{
		Preparing: []int{},
		Ready:     []int{},
	}
	for _, o := range ks.store.Orders() {
		switch o.Status {
		case models.StatusPreparing:
			board.Preparing = append(board.Preparing, o.Token)
		case models.StatusReady:
			board.Ready = append(board.Ready, o.Token)
		}
	}
	sort.Ints(board.Preparing)
	sort.Ints(board.Ready)
	return board
}
