package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"europlast-backend/config"
	_ "europlast-backend/docs" // Important for Swagger
	v1 "europlast-backend/internal/delivery/http/v1"
	"europlast-backend/internal/domain"
	"europlast-backend/internal/repository/content"
	"europlast-backend/internal/repository/postgres"
	"europlast-backend/internal/usecase"
	"europlast-backend/pkg/archive"
	"europlast-backend/pkg/database"
	"europlast-backend/pkg/email"
	"europlast-backend/pkg/logger"
	"europlast-backend/pkg/redis"
	"europlast-backend/pkg/security"
	"europlast-backend/pkg/submission"
	"europlast-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Europlast Site API
// @version         1.0
// @description     Contact form submission and site content for the Europlast website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	secLogger := security.InitSecurityLogger("europlast-backend", cfg.Environment)
	defer secLogger.Sync()
	logger.Log.Info("Starting europlast backend", "port", cfg.Port, "env", cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Redis (optional)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory fallback", "error", err)
		}
	}
	defer redis.Close()

	// 4. Setup Contact Deliveries
	var dispatchers []domain.ContactDispatcher
	probes := map[string]usecase.HealthProbe{"redis": nil, "database": nil}
	if redis.Client() != nil {
		probes["redis"] = redis.HealthCheck
	}

	emailService := email.NewEmailService(cfg)
	if emailService.IsConfigured() {
		dispatchers = append(dispatchers, emailService)
	} else {
		logger.Log.Warn("Email service not fully configured - contact messages will not be mailed")
	}

	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		inboxRepo := postgres.NewContactInboxRepository(dbPool)
		if err := inboxRepo.EnsureSchema(context.Background()); err != nil {
			logger.Log.Error("Failed to prepare contact inbox", "error", err)
			os.Exit(1)
		}
		dispatchers = append(dispatchers, usecase.InboxDispatcher{Repo: inboxRepo})
		probes["database"] = dbPool.Ping
	}

	if archiveCfg := archive.NewConfig(cfg); archiveCfg.Enabled() {
		s3Client, err := archive.NewS3Client(context.Background(), archiveCfg)
		if err != nil {
			logger.Log.Error("Failed to create S3 client", "error", err)
			os.Exit(1)
		}
		dispatchers = append(dispatchers, archive.NewS3Archive(s3Client, archiveCfg.Bucket))
		logger.Log.Info("Contact archive enabled", "provider", string(archiveCfg.Provider), "bucket", archiveCfg.Bucket)
	}

	if cfg.ContactSimulateDelivery || (len(dispatchers) == 0 && !cfg.IsProduction()) {
		logger.Log.Warn("Contact delivery is simulated", "delay", cfg.ContactSimulatedDelay.String())
		dispatchers = append(dispatchers, usecase.SimulatedDispatcher{Delay: cfg.ContactSimulatedDelay})
	}
	if len(dispatchers) == 0 {
		logger.Log.Warn("No contact delivery configured - contact form will be unavailable")
	}

	// 5. Setup UseCases
	guard := submission.NewGuard(redis.Client(), "contact:inflight:", func(err error) {
		logger.Log.Warn("Submission guard fell back to memory", "error", err)
	})
	contactUC, err := usecase.NewContactUsecase(validation.New(), guard, cfg.ContactDeliveryTimeout, dispatchers...)
	if err != nil {
		logger.Log.Error("Failed to set up contact usecase", "error", err)
		os.Exit(1)
	}

	catalogRepo := content.NewCatalogRepository(nil)
	if _, err := catalogRepo.Load(context.Background()); err != nil {
		logger.Log.Error("Failed to load site catalog", "error", err)
		os.Exit(1)
	}
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	healthUC := usecase.NewHealthUsecase(probes)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		CatalogUC: catalogUC,
		HealthUC:  healthUC,
		Redis:     redis.Client(),
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
