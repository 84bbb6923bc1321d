package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-kiosk/internal/kiosk/domain/dto"
	"cafe-kiosk/internal/kiosk/service"
	"cafe-kiosk/pkg/logger"
)

type OrderHandler struct {
	kioskService *service.KioskService
	mylog        *logger.Logger
}

func NewOrderHandler(kioskService *service.KioskService, mylog *logger.Logger) *OrderHandler {
	return &OrderHandler{
		kioskService: kioskService,
		mylog:        mylog,
	}
}

func (oh *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.BindJSON(&req); err != nil {
		oh.mylog.Action("parse_failed").Error("Failed to parse order", err)
		jsonError(c, errors.New("failed to parse JSON"))
		return
	}

	order, err := oh.kioskService.CreateOrder(req)
	if err != nil {
		jsonError(c, err)
		return
	}

	oh.mylog.Action("published").Debug("Order placed", "order_id", order.ID, "token", order.Token, "total", order.Total)
	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		ID:     order.ID,
		Token:  order.Token,
		Total:  order.Total,
		Status: order.Status,
	})
}

func (oh *OrderHandler) List(c *gin.Context) {
	status := c.Query("status")
	activeOnly := c.Query("active") == "true"

	orders, err := oh.kioskService.Orders(status, activeOnly)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

func (oh *OrderHandler) Get(c *gin.Context) {
	order, err := oh.kioskService.Order(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oh *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		oh.mylog.Action("parse_failed").Error("Failed to parse status update", err)
		jsonError(c, errors.New("failed to parse JSON"))
		return
	}

	order, err := oh.kioskService.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
