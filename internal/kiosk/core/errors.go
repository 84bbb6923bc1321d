package core

import "errors"

var (
	ErrParseCmd = errors.New("cannot parse arguments")
	ErrHelp     = errors.New("")

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidOrderType     = errors.New("unknown order type")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidCategory      = errors.New("unknown category")
	ErrInvalidAddon         = errors.New("addon is not offered for this item")

	ErrOrderCompleted  = errors.New("order is already completed")
	ErrItemUnavailable = errors.New("menu item is currently unavailable")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrFieldIsEmpty    = errors.New("field is empty")
)
