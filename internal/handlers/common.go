package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

// respondError maps any error to its HTTP shape. Server-side failures stay
// opaque to the caller; the detail goes to the log only.
func respondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae.Code >= 500 {
		slog.Error("request failed",
			"path", c.FullPath(),
			"status", ae.Code,
			"error", err)
		c.JSON(ae.Code, gin.H{"error": ae.Message})
		return
	}

	msg := ae.Detail
	if msg == "" {
		msg = ae.Message
	}
	c.JSON(ae.Code, gin.H{"error": msg})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		respondError(c, apierr.ErrBadRequest("invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
