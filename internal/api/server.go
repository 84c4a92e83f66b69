package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cmdcenter/internal/api/handlers"
	"cmdcenter/internal/api/middleware"
	"cmdcenter/internal/config"
	"cmdcenter/internal/database"
	"cmdcenter/internal/events"
	"cmdcenter/internal/logger"
	"cmdcenter/internal/pipeline"
	"cmdcenter/internal/worker/processors/export"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	db     *database.Database
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database, producer *events.Producer) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Shared pipeline components
	processor := pipeline.New(cfg, logger)
	exporter := export.New(cfg, logger)

	// Initialize handlers
	importHandler := handlers.NewImportHandler(db.DB, logger, cfg, processor, producer)
	productHandler := handlers.NewProductHandler(db.DB, logger, processor.Gates(), producer)
	issueHandler := handlers.NewIssueHandler(db.DB, logger)
	exportHandler := handlers.NewExportHandler(db.DB, logger, exporter)

	// Routes
	v1 := router.Group("/api/v1")
	{
		// File imports
		imports := v1.Group("/imports")
		{
			imports.POST("", importHandler.Create)
			imports.GET("", importHandler.List)
			imports.GET("/:id", importHandler.Get)
			imports.GET("/:id/feed", exportHandler.Feed)
		}

		// Products
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.POST("/:id/reprice", productHandler.Reprice)
			products.POST("/:id/push", productHandler.Push)
			products.DELETE("/:id", productHandler.Delete)
		}

		// Issues
		issues := v1.Group("/issues")
		{
			issues.GET("", issueHandler.List)
			issues.GET("/:id", issueHandler.Get)
			issues.POST("/:id/resolve", issueHandler.Resolve)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		db:     db,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}
