package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-kiosk/internal/kiosk/domain/dto"
	"cafe-kiosk/internal/kiosk/service"
	"cafe-kiosk/pkg/logger"
)

type CartHandler struct {
	kioskService *service.KioskService
	mylog        *logger.Logger
}

func NewCartHandler(kioskService *service.KioskService, mylog *logger.Logger) *CartHandler {
	return &CartHandler{
		kioskService: kioskService,
		mylog:        mylog,
	}
}

func (ch *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, ch.kioskService.Cart())
}

func (ch *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.BindJSON(&req); err != nil {
		ch.mylog.Action("parse_failed").Error("Failed to parse cart item", err)
		jsonError(c, errors.New("failed to parse JSON"))
		return
	}

	if err := ch.kioskService.AddToCart(req); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch.kioskService.Cart())
}

func (ch *CartHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateQuantityRequest
	if err := c.BindJSON(&req); err != nil {
		ch.mylog.Action("parse_failed").Error("Failed to parse quantity", err)
		jsonError(c, errors.New("failed to parse JSON"))
		return
	}

	if err := ch.kioskService.UpdateCartItemQuantity(c.Param("id"), req.Quantity); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch.kioskService.Cart())
}

func (ch *CartHandler) RemoveItem(c *gin.Context) {
	if err := ch.kioskService.RemoveFromCart(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch.kioskService.Cart())
}

func (ch *CartHandler) Clear(c *gin.Context) {
	ch.kioskService.ClearCart()
	c.JSON(http.StatusOK, ch.kioskService.Cart())
}
