package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/api"
	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/config"
	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/parser"
	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/reader"
	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/store"
)

// Server is the HTTP service wrapper around the parse engine.
type Server struct {
	router *gin.Engine
	store  *store.Store
}

// NewServer wires the engine, store and routes from the app config.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "rentroll.db"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	svc := parser.NewService(
		parser.DefaultConfig(),
		reader.Excel{},
		reader.PDF{},
		reader.OCR{Languages: cfg.Parser.OCRLanguages},
	)

	handler := api.NewHandler(
		svc,
		st,
		filepath.Join(dataDir, "uploads"),
		filepath.Join(dataDir, "exports"),
		cfg.Parser.MaxUploadMB,
	)

	s := &Server{
		router: gin.Default(),
		store:  st,
	}
	s.setupRoutes(handler)
	return s
}

func (s *Server) setupRoutes(handler *api.Handler) {
	// CORS for the separate frontend.
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	s.router.GET("/health", handler.Health)

	apiGroup := s.router.Group("/api")
	{
		handler.RegisterRoutes(apiGroup)
	}
}

// Run starts the server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the server's resources.
func (s *Server) Close() error {
	return s.store.Close()
}
