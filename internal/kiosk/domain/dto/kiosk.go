package dto

import "cafe-kiosk/internal/kiosk/domain/models"

type AddToCartRequest struct {
	MenuItemID string   `json:"menu_item_id"`
	Quantity   int      `json:"quantity"`
	AddonIDs   []string `json:"addon_ids,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

type CreateOrderRequest struct {
	OrderType     string `json:"order_type"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes,omitempty"`
}

type CreateOrderResponse struct {
	ID     string             `json:"id"`
	Token  int                `json:"token"`
	Total  float64            `json:"total"`
	Status models.OrderStatus `json:"status"`
}

type UpdateStatusRequest struct {
	// Status is the target status. When empty the order advances to the
	// next status in the pipeline.
	Status string `json:"status,omitempty"`
}

type MenuItemRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Image       string         `json:"image"`
	Category    string         `json:"category"`
	Addons      []models.Addon `json:"addons,omitempty"`
	Available   bool           `json:"available"`
}

// BoardResponse feeds the public token display: tokens being prepared and
// tokens ready for pickup, both ascending.
type BoardResponse struct {
	Preparing []int `json:"preparing"`
	Ready     []int `json:"ready"`
}

type ItemSales struct {
	Name string `json:"name"`
	Sold int    `json:"sold"`
}

type OverviewResponse struct {
	TodaySales      float64     `json:"today_sales"`
	OrdersToday     int         `json:"orders_today"`
	CompletedOrders int         `json:"completed_orders"`
	ActiveTokens    int         `json:"active_tokens"`
	TopItems        []ItemSales `json:"top_items"`
}
