package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reunion-planner/internal/config"
	"reunion-planner/internal/database"
	"reunion-planner/internal/handlers"
	"reunion-planner/internal/middleware"
	"reunion-planner/internal/models"
	"reunion-planner/internal/repositories"
	"reunion-planner/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// The amount sanity bound is deployment-configurable
	models.MaxLineItemAmount = cfg.Budget.MaxAmount

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	lineItemRepo := repositories.NewLineItemRepository(db)
	reunionRepo := repositories.NewReunionRepository(db)

	// Services. The locker is shared between the line item and sync services so
	// that edits and sync batches on one reunion serialize against each other.
	locker := services.NewReunionLocker()
	budgetLogger := services.NewBudgetLogger()
	metrics := services.NewPrometheusMetrics()
	mapper := services.NewCategoryMapper()
	evaluator := services.NewAlertEvaluator()

	reunionService := services.NewReunionService(reunionRepo)
	lineItemService := services.NewLineItemService(lineItemRepo, reunionRepo, mapper, locker, budgetLogger, metrics)
	summaryService := services.NewBudgetSummaryService(lineItemRepo, reunionRepo, evaluator, cfg.Budget.OverBudgetThreshold, budgetLogger)
	syncService := services.NewSyncService(lineItemRepo, reunionRepo, locker, cfg.Budget.SyncBatchLimit, budgetLogger, metrics)

	// Handlers
	reunionHandler := handlers.NewReunionHandler(reunionService)
	lineItemHandler := handlers.NewLineItemHandler(lineItemService, reunionService)
	budgetHandler := handlers.NewBudgetHandler(summaryService, syncService, reunionService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(cfg.Auth.JWTSecret))

	api.POST("/reunions", reunionHandler.CreateReunion)
	api.GET("/reunions", reunionHandler.ListReunions)
	api.GET("/reunions/:reunionId", reunionHandler.GetReunion)
	api.PUT("/reunions/:reunionId", reunionHandler.UpdateReunion)
	api.DELETE("/reunions/:reunionId", reunionHandler.DeleteReunion)

	api.PUT("/reunions/:reunionId/line-items", lineItemHandler.UpsertLineItem)
	api.GET("/reunions/:reunionId/line-items", lineItemHandler.ListLineItems)
	api.DELETE("/reunions/:reunionId/line-items/:sourceModule/:sourceKey", lineItemHandler.RemoveLineItem)

	api.GET("/reunions/:reunionId/budget/summary", budgetHandler.GetBudgetSummary)
	api.GET("/reunions/:reunionId/budget/categories", budgetHandler.GetCategoryReport)
	api.POST("/reunions/:reunionId/budget/sync", budgetHandler.SyncBudget)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(lineItemRepo, reunionService)
		api.POST("/dev/reunions/:reunionId/generate-sample-data", devHandler.GenerateSampleData)
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	slog.Info("server started", "addr", server.Addr, "environment", cfg.Server.Environment)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	slog.Info("server stopped")
}
