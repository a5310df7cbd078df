package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/anshulj07/sciquel-test/internal/config"
	"github.com/anshulj07/sciquel-test/internal/handler"
	"github.com/anshulj07/sciquel-test/internal/logger"
	"github.com/anshulj07/sciquel-test/internal/metrics"
	"github.com/anshulj07/sciquel-test/internal/repository"
	"github.com/anshulj07/sciquel-test/internal/service"
	"github.com/anshulj07/sciquel-test/internal/validator"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	if err := logger.Configure(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		logger.Fatal("Failed to configure logger",
			slog.String("error", err.Error()))
	}

	// Comments live in memory for the lifetime of the process
	commentRepo := repository.NewMemoryCommentRepository()

	storeStatsCollector := metrics.NewStoreStatsCollector(commentRepo)
	storeStatsCollector.Start(cfg.StoreStatsInterval)
	defer storeStatsCollector.Stop()

	commentService := service.NewCommentService(commentRepo, validator.NewValidator(), cfg.RecentLimit)

	commentHandler := handler.NewCommentHandler(commentService, cfg.MaxBodyBytes)
	healthHandler := handler.NewHealthHandler(commentRepo, version)

	gin.SetMode(cfg.GinMode)
	router := handler.NewRouter(commentHandler, healthHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverLog := logger.WithFields(
		slog.String("port", cfg.ServerPort),
		slog.String("version", version))

	// Start server in goroutine
	go func() {
		serverLog.Info("Starting server",
			slog.Int("recent_limit", cfg.RecentLimit),
			slog.Int64("max_body_bytes", cfg.MaxBodyBytes))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	serverLog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	serverLog.Info("Server exited",
		slog.Int("comments_discarded", commentRepo.Count(context.Background())))
}
