package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
)

// statusSequence is the preparation pipeline in staff-facing order.
var statusSequence = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusCompleted}

func (s OrderStatus) Valid() bool {
	for _, known := range statusSequence {
		if s == known {
			return true
		}
	}
	return false
}

// Next returns the status immediately following s in the preparation
// pipeline. The second return is false for Completed and unknown values.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, known := range statusSequence {
		if s == known && i+1 < len(statusSequence) {
			return statusSequence[i+1], true
		}
	}
	return "", false
}

type OrderType string

const (
	TypeDineIn   OrderType = "Dine-In"
	TypeTakeaway OrderType = "Takeaway"
)

func (t OrderType) Valid() bool {
	return t == TypeDineIn || t == TypeTakeaway
}

type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCash PaymentMethod = "Cash"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentUPI || p == PaymentCash
}

// Categories is the fixed set of menu categories.
var Categories = []string{
	"Momos", "Pizza", "Fried Rice", "Burger", "Sandwich", "Noodles",
	"Starters", "Pasta", "Coffee & Shake", "Waffle", "Maggie", "Garlic Bread", "Roll",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Addon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Addons      []Addon `json:"addons,omitempty"`
	Available   bool    `json:"available"`
}

// CartItem is one line of the in-progress order. MenuItem is a value copy
// taken when the line was added, so later catalog edits do not leak in.
type CartItem struct {
	MenuItem       MenuItem `json:"menu_item"`
	Quantity       int      `json:"quantity"`
	SelectedAddons []Addon  `json:"selected_addons"`
	Notes          string   `json:"notes,omitempty"`
}

// LineTotal is (unit price + addon prices) x quantity.
func (ci CartItem) LineTotal() float64 {
	addons := 0.0
	for _, a := range ci.SelectedAddons {
		addons += a.Price
	}
	return (ci.MenuItem.Price + addons) * float64(ci.Quantity)
}

type Order struct {
	ID            string        `json:"id"`
	Token         int           `json:"token"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	OrderType     OrderType     `json:"order_type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
	Notes         string        `json:"notes,omitempty"`
}
