package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusdesk/events-api/api/swagger"
	"github.com/campusdesk/events-api/internal/handler"
	"github.com/campusdesk/events-api/internal/middleware"
	"github.com/campusdesk/events-api/internal/service"
	"github.com/campusdesk/events-api/internal/store"
	"github.com/campusdesk/events-api/internal/validation"
	"github.com/campusdesk/events-api/pkg/config"
	"github.com/campusdesk/events-api/pkg/jobs"
	"github.com/campusdesk/events-api/pkg/logger"
	corsmiddleware "github.com/campusdesk/events-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusdesk/events-api/pkg/middleware/requestid"
	"github.com/campusdesk/events-api/pkg/storage"
)

// @title Campus Event Desk API
// @version 1.0.0
// @description Event admission, conflict detection, and analytics for the campus scheduling dashboard
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	memory := store.NewMemory()
	references := service.NewReferenceService()
	metrics := service.NewMetricsService()
	analytics := service.NewAnalyticsService(memory, logr).WithMetrics(metrics)

	rules := validation.EventRules{
		LeadTime:    cfg.Scheduling.LeadTime,
		OpeningHour: cfg.Scheduling.OpeningHour,
		ClosingHour: cfg.Scheduling.ClosingHour,
	}
	scheduling := service.NewSchedulingService(service.SchedulingServiceParams{
		Store:            memory,
		Conflicts:        service.NewConflictChecker(cfg.Scheduling.LeadTime),
		Analytics:        analytics,
		References:       references,
		Rules:            rules,
		StrictReferences: cfg.Scheduling.StrictReferences,
		Metrics:          metrics,
		Logger:           logr,
	})

	validate := validator.New()

	eventHandler := handler.NewEventHandler(scheduling)
	ticketHandler := handler.NewTicketHandler(scheduling)
	inviteHandler := handler.NewInviteHandler(scheduling)
	analyticsHandler := handler.NewAnalyticsHandler(analytics)
	referenceHandler := handler.NewReferenceHandler(references)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	api := r.Group(cfg.APIPrefix)

	events := api.Group("/events")
	events.POST("", eventHandler.Submit)
	events.GET("", eventHandler.ListByClub)
	events.GET("/upcoming", eventHandler.Upcoming)
	events.GET("/past", eventHandler.Past)
	events.GET("/pending", eventHandler.Pending)
	events.GET("/approved", eventHandler.Approved)

	tickets := api.Group("/tickets")
	tickets.POST("", ticketHandler.Submit)
	tickets.GET("", ticketHandler.ListByClub)

	invites := api.Group("/invites")
	invites.POST("", inviteHandler.Submit)
	invites.GET("", inviteHandler.List)

	api.GET("/analytics", analyticsHandler.Snapshot)

	reference := api.Group("/reference")
	reference.GET("/buildings", referenceHandler.Buildings)
	reference.GET("/departments", referenceHandler.Departments)

	if cfg.Exports.Enabled {
		localStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

		exports := service.NewExportService(service.ExportServiceParams{
			Analytics:    analytics,
			Storage:      localStorage,
			Signer:       signer,
			Validator:    validate,
			Logger:       logr,
			DownloadPath: cfg.APIPrefix + "/exports/download",
		})
		queue := jobs.NewQueue("analytics-exports", exports.Process, jobs.QueueConfig{
			Workers:    cfg.Exports.WorkerConcurrency,
			MaxRetries: cfg.Exports.WorkerRetries,
			Logger:     logr,
		})
		exports.SetQueue(queue)
		queue.Start(ctx)
		defer queue.Stop()
		exports.StartCleanup(ctx, cfg.Exports.CleanupInterval, cfg.Exports.SignedURLTTL)

		exportHandler := handler.NewExportHandler(exports)
		api.POST("/analytics/exports", exportHandler.Create)
		api.GET("/analytics/exports/:id", exportHandler.Status)
		api.GET("/exports/download", exportHandler.Download)
	}

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown error", "error", err)
	}
}
