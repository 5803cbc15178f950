package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// Parse accepts an uploaded rent roll file and returns the normalized
// record.
// POST /api/parse
func (h *Handler) Parse(c *gin.Context) {
	uploaded, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if h.maxUpload > 0 && uploaded.Size > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	// Extension gate before any read attempt.
	ext := strings.ToLower(filepath.Ext(uploaded.Filename))
	switch ext {
	case ".xlsx", ".xls", ".xlsm", ".pdf":
	default:
		respondParseError(c, model.NewParseError(model.ErrInvalidFileType, ""))
		h.logFailure(uploaded.Filename, model.NewParseError(model.ErrInvalidFileType, ""))
		return
	}

	tmpPath := filepath.Join(h.uploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(uploaded, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return
	}
	defer os.Remove(tmpPath)

	result, err := h.svc.ParseFile(tmpPath)
	if err != nil {
		pe, ok := model.AsParseError(err)
		if !ok {
			pe = model.NewParseError(model.ErrInternal, err.Error())
		}
		h.logFailure(uploaded.Filename, pe)
		respondParseError(c, pe)
		return
	}

	// The stored filename is the upload's own name, not the temp name.
	result.Filename = filepath.Base(uploaded.Filename)

	logID, err := h.store.LogSuccess(result)
	if err != nil {
		log.Printf("failed to record parse log: %v", err)
	}

	payload := flattenResult(result)
	payload["success"] = true
	payload["log_id"] = logID
	c.JSON(http.StatusOK, payload)
}

// respondParseError translates a ParseError into the wire error record. The
// mapping is exhaustive: internal_error is the only 500.
func respondParseError(c *gin.Context, pe *model.ParseError) {
	status := http.StatusBadRequest
	if pe.Kind == model.ErrInternal {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   pe.Kind,
		"message": pe.Message,
	})
}

// flattenResult spreads the result fields at the top level of the response,
// matching the wrapper's historical contract.
func flattenResult(result *model.ParseResult) map[string]interface{} {
	data, err := json.Marshal(result)
	if err != nil {
		return map[string]interface{}{}
	}
	payload := map[string]interface{}{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]interface{}{}
	}
	return payload
}

func (h *Handler) logFailure(filename string, pe *model.ParseError) {
	if err := h.store.LogFailure(filepath.Base(filename), pe); err != nil {
		log.Printf("failed to record parse log: %v", err)
	}
}
