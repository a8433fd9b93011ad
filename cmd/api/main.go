package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"project-tracker-api/internal/config"
	"project-tracker-api/internal/database"
	"project-tracker-api/internal/handler"
	"project-tracker-api/internal/job"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/router"
	"project-tracker-api/internal/service"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Tracker Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database; a failed startup connection retries in the
	// background so the pod stays alive
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		database.SetDB(db)
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrate(db, logger); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	var dbStatsDone chan struct{}
	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		dbStatsDone = database.StartDBStatsCollector(db, m)

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()
	}

	// Redis is optional; the type cache degrades to pass-through
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, type caching disabled", zap.Error(err))
		redisClient = nil
	}

	// Wire repositories and services
	projectRepo := repository.NewProjectRepository(db)
	typeRepo := repository.NewWorkItemTypeRepository(db)
	workItemRepo := repository.NewWorkItemRepository(db)
	fieldValueRepo := repository.NewFieldValueRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	typeCache := service.NewTypeCache(redisClient, cfg.Redis.TypeTTL, logger)

	projectService := service.NewProjectService(projectRepo, logger)
	templateService := service.NewTemplateService(projectRepo, typeRepo, typeCache, m, logger)
	workItemService := service.NewWorkItemService(workItemRepo, typeRepo, m, logger)
	attachmentService := service.NewAttachmentService(attachmentRepo, logger)

	// Schedule the field value retention job
	scheduler := cron.New()
	if cfg.Cleanup.Schedule != "" {
		cleanupJob := job.NewCleanupJob(fieldValueRepo, cfg.Cleanup.Retention, logger)
		if _, err := scheduler.AddJob(cfg.Cleanup.Schedule, cleanupJob); err != nil {
			logger.Warn("Failed to schedule cleanup job", zap.Error(err))
		} else {
			logger.Info("Cleanup job scheduled",
				zap.String("schedule", cfg.Cleanup.Schedule),
				zap.Duration("retention", cfg.Cleanup.Retention),
			)
		}
	}
	scheduler.Start()

	r := router.New(cfg, logger, m, router.Handlers{
		Health:     handler.NewHealthHandler(),
		Project:    handler.NewProjectHandler(projectService),
		Template:   handler.NewTemplateHandler(templateService),
		WorkItem:   handler.NewWorkItemHandler(workItemService),
		Attachment: handler.NewAttachmentHandler(attachmentService),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Tracker Service started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	scheduler.Stop()
	if dbStatsDone != nil {
		close(dbStatsDone)
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if db != nil {
		database.Close(db)
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
