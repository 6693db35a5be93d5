package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/config"
	"github.com/avaluo/landval/internal/database"
	"github.com/avaluo/landval/internal/factors"
	"github.com/avaluo/landval/internal/handlers"
	"github.com/avaluo/landval/internal/logger"
	"github.com/avaluo/landval/internal/middleware"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/repository"
	"github.com/avaluo/landval/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithLevel(cfg.Server.Env, cfg.Server.LogLevel)
	log.Info("Starting land valuation API", map[string]interface{}{
		"version":      handlers.APIVersion,
		"rule_version": factors.RuleVersion,
		"environment":  cfg.Server.Env,
		"port":         cfg.Server.Port,
	})

	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	if cfg.Database.AutoMigrate {
		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to apply database schema", err, nil)
		}
		log.Info("Database schema applied", nil)
	}

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal("Failed to register request validators", err, nil)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Middleware order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Repositories
	terrainRepo := repository.NewTerrainRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	comparableRepo := repository.NewComparableRepository(db)
	constructionRepo := repository.NewConstructionRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Services
	terrainService := services.NewTerrainService(terrainRepo, documentRepo, log)
	valuationService := services.NewValuationService(documentRepo, terrainRepo, comparableRepo, constructionRepo, log)
	documentService := services.NewDocumentService(documentRepo, log)
	comparableService := services.NewComparableService(comparableRepo, documentRepo, log)
	constructionService := services.NewConstructionService(constructionRepo, documentRepo, log)
	reportService := services.NewReportService(documentRepo, terrainRepo, comparableRepo, constructionRepo, valuationService, log)

	// Handlers
	terrainHandler := handlers.NewTerrainHandler(terrainService)
	valuationHandler := handlers.NewValuationHandler(valuationService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	comparableHandler := handlers.NewComparableHandler(comparableService)
	constructionHandler := handlers.NewConstructionHandler(constructionService)
	reportHandler := handlers.NewReportHandler(reportService)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	appraiser := middleware.RequireRole(models.RoleAppraiser)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(sessionRepo))
	{
		documents := v1.Group("/documents")
		{
			documents.GET("/appraised", documentHandler.ListAppraised)
			documents.PUT("/:id/terrain", appraiser, limiter.Middleware(), terrainHandler.Compute)
			documents.GET("/:id/terrain", appraiser, terrainHandler.Get)
			documents.POST("/:id/area", appraiser, limiter.Middleware(), documentHandler.CalculateArea)
		}

		valuations := v1.Group("/valuations")
		{
			valuations.GET("/documents/:id", valuationHandler.Summary)
			valuations.POST("/documents/:id/finalize", valuationHandler.Finalize)
		}

		comparables := v1.Group("/comparables")
		{
			comparables.POST("/documents/:id", limiter.Middleware(), comparableHandler.Create)
			comparables.GET("/documents/:id", comparableHandler.List)
			comparables.DELETE("/:id", comparableHandler.Delete)
		}

		constructions := v1.Group("/constructions")
		{
			constructions.POST("/documents/:id", limiter.Middleware(), constructionHandler.Create)
			constructions.GET("/documents/:id", constructionHandler.List)
			constructions.DELETE("/:id", constructionHandler.Delete)
		}

		v1.GET("/reports/documents/:id", reportHandler.Get)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
