package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/parser"
	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/store"
)

// Handler bundles the API dependencies: the parse engine, the history store
// and the scratch directories.
type Handler struct {
	svc       *parser.Service
	store     *store.Store
	uploadDir string
	exportDir string
	maxUpload int64 // bytes
	downloads *exportDownloadStore
}

// NewHandler creates the API handler.
func NewHandler(svc *parser.Service, st *store.Store, uploadDir, exportDir string, maxUploadMB int) *Handler {
	return &Handler{
		svc:       svc,
		store:     st,
		uploadDir: uploadDir,
		exportDir: exportDir,
		maxUpload: int64(maxUploadMB) << 20,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes registers all API routes on the group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/parse", h.Parse)
	router.GET("/history", h.History)
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
