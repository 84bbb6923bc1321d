package handle

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafe-kiosk/internal/kiosk/service"
	"cafe-kiosk/pkg/logger"
)

// BoardHandler serves the public token display and the dashboard overview.
type BoardHandler struct {
	kioskService *service.KioskService
	mylog        *logger.Logger
}

func NewBoardHandler(kioskService *service.KioskService, mylog *logger.Logger) *BoardHandler {
	return &BoardHandler{
		kioskService: kioskService,
		mylog:        mylog,
	}
}

func (bh *BoardHandler) Board(c *gin.Context) {
	c.JSON(http.StatusOK, bh.kioskService.Board())
}

func (bh *BoardHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, bh.kioskService.Overview(time.Now()))
}
