package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-kiosk/internal/kiosk/domain/dto"
	"cafe-kiosk/internal/kiosk/service"
	"cafe-kiosk/pkg/logger"
)

type MenuHandler struct {
	kioskService *service.KioskService
	mylog        *logger.Logger
}

func NewMenuHandler(kioskService *service.KioskService, mylog *logger.Logger) *MenuHandler {
	return &MenuHandler{
		kioskService: kioskService,
		mylog:        mylog,
	}
}

func (mh *MenuHandler) List(c *gin.Context) {
	category := c.Query("category")
	availableOnly := c.Query("available") == "true"

	items := mh.kioskService.Menu(category, availableOnly)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (mh *MenuHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": mh.kioskService.Categories()})
}

func (mh *MenuHandler) Create(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.BindJSON(&req); err != nil {
		mh.mylog.Action("parse_failed").Error("Failed to parse menu item", err)
		jsonError(c, errors.New("failed to parse JSON"))
		return
	}

	item, err := mh.kioskService.AddMenuItem(req)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (mh *MenuHandler) Update(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.BindJSON(&req); err != nil {
		mh.mylog.Action("parse_failed").Error("Failed to parse menu item", err)
		jsonError(c, errors.New("failed to parse JSON"))
		return
	}

	item, err := mh.kioskService.UpdateMenuItem(c.Param("id"), req)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (mh *MenuHandler) Delete(c *gin.Context) {
	if err := mh.kioskService.DeleteMenuItem(c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
