package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/barangay-ai/api-service/internal/adapter/client"
	"github.com/ressKim-io/barangay-ai/api-service/internal/adapter/http/router"
	"github.com/ressKim-io/barangay-ai/api-service/internal/infrastructure/config"
	"github.com/ressKim-io/barangay-ai/api-service/internal/infrastructure/logger"
	"github.com/ressKim-io/barangay-ai/api-service/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize the provider client once; it is shared read-only by all requests
	gemini, err := client.NewGeminiClient(context.Background(), client.GeminiConfig{
		Model:         cfg.Classifier.Model,
		ThinkingLevel: cfg.Classifier.ThinkingLevel,
		Timeout:       cfg.Classifier.Timeout,
		BaseURL:       cfg.Classifier.BaseURL,
	})
	if err != nil {
		log.Error("Failed to initialize Gemini client", zap.Error(err))
		return fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	log.Info("Gemini client ready",
		zap.String("model", gemini.Model()),
		zap.String("thinking_level", cfg.Classifier.ThinkingLevel),
		zap.Bool("validate_taxonomy", cfg.Classifier.ValidateTaxonomy),
	)

	// Setup router
	r := router.Setup(router.Options{
		Classifier:       client.NewGeminiClassifier(gemini),
		Metrics:          metrics.New(),
		Logger:           log,
		ValidateTaxonomy: cfg.Classifier.ValidateTaxonomy,
	})

	// Create HTTP server. No WriteTimeout: a classify call waits on the provider for as long as it takes.
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
