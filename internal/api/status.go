package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness.
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rent-roll-parser",
	})
}
