package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/api"
	"github.com/Neurvinch/rageBetAds/internal/config"
	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/ipfs"
	"github.com/Neurvinch/rageBetAds/internal/llm"
	"github.com/Neurvinch/rageBetAds/internal/sportsdb"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := config.Load(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if config.SportsDBAPIKey() == "" {
		logger.Fatal("SPORTSDB_API_KEY is required")
	}

	gateway := sportsdb.New(config.SportsDBAPIKey(), config.GatewayTimeout(), logger)

	var reasoner domain.TextReasoner
	reasoner, err := llm.NewReasoner(config.ReasonerProvider(), config.ReasonerAPIKey(), config.ReasonerTimeout())
	if err != nil {
		// Predictions degrade to the engine fallback rather than refusing
		// to start.
		logger.Warn("reasoner initialization failed, using mock reasoner",
			zap.String("provider", config.ReasonerProvider()), zap.Error(err))
		reasoner = llm.NewMockReasoner()
	} else {
		logger.Info("reasoner initialized", zap.String("provider", config.ReasonerProvider()))
	}

	anchors := ipfs.NewPinataClient(config.PinataAPIKey(), config.PinataSecretKey(), config.AnchorTimeout())

	app := api.NewApp(gateway, reasoner, anchors, logger)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:    addr,
		Handler: app.Router,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
