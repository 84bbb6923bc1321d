package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-kiosk/internal/kiosk/core"
	"cafe-kiosk/internal/kiosk/domain/dto"
	"cafe-kiosk/internal/kiosk/domain/models"
	"cafe-kiosk/internal/kiosk/state"
	"cafe-kiosk/pkg/logger"
)

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: "pizza1", Name: "Margherita Pizza", Price: 250, Category: "Pizza", Available: true,
			Addons: []models.Addon{{ID: "addon3", Name: "Extra Cheese", Price: 60}},
		},
		{ID: "burger1", Name: "Aloo Tikki Burger", Price: 90, Category: "Burger", Available: true},
		{ID: "coffee1", Name: "Cold Coffee", Price: 150, Category: "Coffee & Shake", Available: false},
	}
}

func newTestService(t *testing.T) *KioskService {
	t.Helper()
	mylog, err := logger.New("kiosk-test", "error")
	require.NoError(t, err)
	store := state.New(101, testMenu())
	return New(store, core.KioskParams{MaxQuantity: 10, MaxNotesLen: 20}, mylog)
}

func placeOrder(t *testing.T, ks *KioskService, itemID string, qty int) models.Order {
	t.Helper()
	require.NoError(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: itemID, Quantity: qty}))
	order, err := ks.CreateOrder(dto.CreateOrderRequest{OrderType: "Takeaway", PaymentMethod: "Cash"})
	require.NoError(t, err)
	return order
}

func TestMenuFiltering(t *testing.T) {
	ks := newTestService(t)

	assert.Len(t, ks.Menu("", false), 3)
	assert.Len(t, ks.Menu("", true), 2)

	pizza := ks.Menu("Pizza", false)
	require.Len(t, pizza, 1)
	assert.Equal(t, "pizza1", pizza[0].ID)

	assert.Empty(t, ks.Menu("Waffle", false))
	assert.Len(t, ks.Categories(), 13)
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	ks := newTestService(t)

	require.NoError(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "pizza1"}))
	cart := ks.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 250.0, cart.Total)
}

func TestAddToCartValidation(t *testing.T) {
	ks := newTestService(t)

	assert.ErrorIs(t, ks.AddToCart(dto.AddToCartRequest{Quantity: 1}), core.ErrFieldIsEmpty)
	assert.ErrorIs(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "pizza1", Quantity: -2}), core.ErrInvalidQuantity)
	assert.ErrorIs(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "pizza1", Quantity: 11}), core.ErrInvalidQuantity)
	assert.ErrorIs(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "nope", Quantity: 1}), core.ErrMenuItemNotFound)
	assert.ErrorIs(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "coffee1", Quantity: 1}), core.ErrItemUnavailable)

	longNotes := strings.Repeat("x", 21)
	assert.Error(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "pizza1", Quantity: 1, Notes: longNotes}))

	assert.Empty(t, ks.Cart().Items)
}

func TestUpdateCartItemQuantityBounds(t *testing.T) {
	ks := newTestService(t)
	require.NoError(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "pizza1", Quantity: 2}))

	assert.ErrorIs(t, ks.UpdateCartItemQuantity("pizza1", 11), core.ErrInvalidQuantity)

	// Non-positive quantities remove the line.
	require.NoError(t, ks.UpdateCartItemQuantity("pizza1", 0))
	assert.Empty(t, ks.Cart().Items)
}

func TestCreateOrderValidation(t *testing.T) {
	ks := newTestService(t)

	_, err := ks.CreateOrder(dto.CreateOrderRequest{OrderType: "Delivery", PaymentMethod: "Cash"})
	assert.ErrorIs(t, err, core.ErrInvalidOrderType)

	_, err = ks.CreateOrder(dto.CreateOrderRequest{OrderType: "Dine-In", PaymentMethod: "Card"})
	assert.ErrorIs(t, err, core.ErrInvalidPaymentMethod)

	_, err = ks.CreateOrder(dto.CreateOrderRequest{OrderType: "Dine-In", PaymentMethod: "Cash"})
	assert.ErrorIs(t, err, core.ErrEmptyCart)
}

func TestCreateOrderFlow(t *testing.T) {
	ks := newTestService(t)

	require.NoError(t, ks.AddToCart(dto.AddToCartRequest{MenuItemID: "pizza1", Quantity: 2}))
	order, err := ks.CreateOrder(dto.CreateOrderRequest{OrderType: "Dine-In", PaymentMethod: "Cash"})
	require.NoError(t, err)

	assert.Equal(t, 101, order.Token)
	assert.Equal(t, 500.0, order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Empty(t, ks.Cart().Items)

	second := placeOrder(t, ks, "burger1", 1)
	assert.Equal(t, 102, second.Token)
}

func TestOrdersFiltering(t *testing.T) {
	ks := newTestService(t)

	first := placeOrder(t, ks, "pizza1", 1)
	second := placeOrder(t, ks, "burger1", 1)

	_, err := ks.UpdateOrderStatus(first.ID, "Completed")
	require.NoError(t, err)

	all, err := ks.Orders("", false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "most recent first")

	active, err := ks.Orders("", true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	completed, err := ks.Orders("Completed", false)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, first.ID, completed[0].ID)

	_, err = ks.Orders("Burnt", false)
	assert.ErrorIs(t, err, core.ErrInvalidStatus)
}

func TestUpdateOrderStatusAdvances(t *testing.T) {
	ks := newTestService(t)
	order := placeOrder(t, ks, "pizza1", 1)

	for _, want := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
		got, err := ks.UpdateOrderStatus(order.ID, "")
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}

	_, err := ks.UpdateOrderStatus(order.ID, "")
	assert.ErrorIs(t, err, core.ErrOrderCompleted)

	_, err = ks.UpdateOrderStatus("ORD-missing", "")
	assert.ErrorIs(t, err, core.ErrOrderNotFound)
}

func TestBoardQueues(t *testing.T) {
	ks := newTestService(t)

	board := ks.Board()
	assert.Empty(t, board.Preparing)
	assert.Empty(t, board.Ready)

	first := placeOrder(t, ks, "pizza1", 1)   // token 101
	second := placeOrder(t, ks, "burger1", 1) // token 102
	third := placeOrder(t, ks, "pizza1", 1)   // token 103

	_, err := ks.UpdateOrderStatus(third.ID, "Preparing")
	require.NoError(t, err)
	_, err = ks.UpdateOrderStatus(first.ID, "Preparing")
	require.NoError(t, err)
	_, err = ks.UpdateOrderStatus(second.ID, "Ready")
	require.NoError(t, err)

	board = ks.Board()
	assert.Equal(t, []int{101, 103}, board.Preparing, "ascending token order")
	assert.Equal(t, []int{102}, board.Ready)
}

func TestMenuItemValidation(t *testing.T) {
	ks := newTestService(t)

	_, err := ks.AddMenuItem(dto.MenuItemRequest{Price: 30, Category: "Pizza"})
	assert.ErrorIs(t, err, core.ErrFieldIsEmpty)

	_, err = ks.AddMenuItem(dto.MenuItemRequest{Name: "Tea", Price: -1, Category: "Pizza"})
	assert.Error(t, err)

	_, err = ks.AddMenuItem(dto.MenuItemRequest{Name: "Tea", Price: 30, Category: "Beverages"})
	assert.ErrorIs(t, err, core.ErrInvalidCategory)

	_, err = ks.AddMenuItem(dto.MenuItemRequest{
		Name: "Tea", Price: 30, Category: "Coffee & Shake",
		Addons: []models.Addon{{Name: "Honey", Price: -5}},
	})
	assert.Error(t, err)

	item, err := ks.AddMenuItem(dto.MenuItemRequest{Name: "Tea", Price: 30, Category: "Coffee & Shake", Available: true})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	require.NoError(t, ks.DeleteMenuItem(item.ID))
	assert.Len(t, ks.Menu("", false), 3)
}
