package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/oshocredit/khata_backend/internal/adapters/blobstore"
	"github.com/oshocredit/khata_backend/internal/adapters/gemini"
	"github.com/oshocredit/khata_backend/internal/adapters/whatsapp"
	portsrepo "github.com/oshocredit/khata_backend/internal/core/ports/repositories"
	"github.com/oshocredit/khata_backend/internal/core/services"
	"github.com/oshocredit/khata_backend/internal/handlers"
	"github.com/oshocredit/khata_backend/internal/middleware"
	"github.com/oshocredit/khata_backend/internal/platform/config"
	"github.com/oshocredit/khata_backend/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the snapshot database
	db, err := database.NewSQLiteDB(cfg.SnapshotDBPath)
	if err != nil {
		logger.Error("Failed to open snapshot database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	snapshotStore, err := blobstore.NewSQLiteSnapshotStore(db, cfg.SnapshotName)
	if err != nil {
		logger.Error("Failed to initialize snapshot store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build external collaborators
	advisor := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	channel := whatsapp.NewDeepLinkChannel(cfg.WACountryCode)

	// Build services and load prior state; absent or malformed data just
	// forces the login flow, it never aborts startup.
	container := services.NewServiceContainer(
		portsrepo.RepositoryProvider{SnapshotStore: snapshotStore},
		advisor,
		channel,
	)
	if err := container.Session.Init(context.Background()); err != nil {
		logger.Warn("Failed to load prior state, starting empty", slog.String("error", err.Error()))
	}
	container.Navigation = services.NewNavigationService(container.Session)
	logger.Info("Session initialized", slog.Bool("has_profile", container.Session.Profile() != nil))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Rate limiting on the whole API surface
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, container)

	// Final save on shutdown closes the session lifecycle.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("Shutting down, saving final snapshot")
		if err := container.Session.Close(context.Background()); err != nil {
			logger.Error("Final snapshot save failed", slog.String("error", err.Error()))
		}
		os.Exit(0)
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
