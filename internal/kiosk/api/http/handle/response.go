package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-kiosk/internal/kiosk/core"
)

// jsonError writes an error response with the status code derived from the
// sentinel the error wraps.
func jsonError(c *gin.Context, err error) {
	c.JSON(statusForErr(err), gin.H{"error": err.Error()})
}

func statusForErr(err error) int {
	switch {
	case errors.Is(err, core.ErrMenuItemNotFound),
		errors.Is(err, core.ErrCartItemNotFound),
		errors.Is(err, core.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrOrderCompleted):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
