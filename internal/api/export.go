package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/exporter"
)

const downloadTTL = 10 * time.Minute

// ExportRequest selects which history entry to export.
type ExportRequest struct {
	ID int64 `json:"id"`
}

// Export renders a stored parse result into a normalized workbook and
// returns a one-shot download token.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid export request"})
		return
	}

	result, err := h.store.GetResult(req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "parse result not found"})
		return
	}

	f, err := exporter.WriteWorkbook(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}
	defer f.Close()

	base := strings.TrimSuffix(result.Filename, filepath.Ext(result.Filename))
	downloadName := fmt.Sprintf("%s_normalized.xlsx", base)
	exportPath := filepath.Join(h.exportDir, uuid.NewString()+".xlsx")
	if err := f.SaveAs(exportPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save workbook"})
		return
	}

	token := h.downloads.put(exportPath, downloadName, downloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"filename": downloadName,
	})
}

// DownloadExport streams a prepared workbook once by token.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}
	h.downloads.delete(token)

	c.FileAttachment(item.filePath, item.downloadName)
}
