package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// History lists recent parse log entries, newest first.
// GET /api/history?limit=50
func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.store.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   entries,
	})
}
