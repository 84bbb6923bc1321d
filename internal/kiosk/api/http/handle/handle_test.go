package handle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-kiosk/internal/kiosk/core"
	"cafe-kiosk/internal/kiosk/domain/models"
	"cafe-kiosk/internal/kiosk/service"
	"cafe-kiosk/internal/kiosk/state"
	"cafe-kiosk/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mylog, err := logger.New("kiosk-test", "error")
	require.NoError(t, err)

	menu := []models.MenuItem{
		{ID: "pizza1", Name: "Margherita Pizza", Price: 250, Category: "Pizza", Available: true},
		{ID: "burger1", Name: "Aloo Tikki Burger", Price: 90, Category: "Burger", Available: true},
	}
	kioskService := service.New(state.New(101, menu), core.KioskParams{}, mylog)

	menuHandler := NewMenuHandler(kioskService, mylog)
	cartHandler := NewCartHandler(kioskService, mylog)
	orderHandler := NewOrderHandler(kioskService, mylog)
	boardHandler := NewBoardHandler(kioskService, mylog)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/menu", menuHandler.List)
	v1.POST("/menu", menuHandler.Create)
	v1.DELETE("/menu/:id", menuHandler.Delete)
	v1.GET("/cart", cartHandler.Get)
	v1.POST("/cart/items", cartHandler.AddItem)
	v1.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
	v1.POST("/orders", orderHandler.Create)
	v1.GET("/orders", orderHandler.List)
	v1.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	v1.GET("/board", boardHandler.Board)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestKioskOrderFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"menu_item_id":"pizza1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		Items []models.CartItem `json:"items"`
		Total float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 500.0, cart.Total)

	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", `{"order_type":"Dine-In","payment_method":"Cash"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID     string  `json:"id"`
		Token  int     `json:"token"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 101, created.Token)
	assert.Equal(t, 500.0, created.Total)
	assert.Equal(t, "Pending", created.Status)

	// Cart is empty again.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	// Advance to Preparing, then check the token board.
	w = doJSON(t, router, http.MethodPut, "/api/v1/orders/"+created.ID+"/status", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/board", "")
	require.Equal(t, http.StatusOK, w.Code)
	var board struct {
		Preparing []int `json:"preparing"`
		Ready     []int `json:"ready"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Equal(t, []int{101}, board.Preparing)
	assert.Empty(t, board.Ready)
}

func TestErrorStatusCodes(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"menu_item_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"menu_item_id":"pizza1","quantity":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", `{"order_type":"Dine-In","payment_method":"Cash"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart is rejected")

	w = doJSON(t, router, http.MethodPut, "/api/v1/orders/ORD-missing/status", `{"status":"Ready"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/menu/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/menu", `{"name":"Tea","price":30,"category":"Beverages"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
