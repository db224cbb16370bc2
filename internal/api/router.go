package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/api/handlers"
	mw "github.com/Neurvinch/rageBetAds/internal/api/middleware"
	"github.com/Neurvinch/rageBetAds/internal/config"
	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/ipfs"
	"github.com/Neurvinch/rageBetAds/internal/llm"
	"github.com/Neurvinch/rageBetAds/internal/metrics"
	"github.com/Neurvinch/rageBetAds/internal/service"
	"github.com/Neurvinch/rageBetAds/internal/sportsdb"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and shared components for lifecycle management.
type App struct {
	Router      *chi.Mux
	Metrics     *metrics.Metrics
	Cache       *service.PredictionCache
	Predictions *service.PredictionService
	Oracle      *service.Oracle
}

func NewApp(gateway domain.SportsGateway, reasoner domain.TextReasoner, anchors domain.AnchorStore, logger *zap.Logger) *App {
	m := metrics.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Services
	analyzer := service.NewFormAnalyzer(logger)
	predictor := service.NewPredictor(reasoner, rng, m, logger)
	cache := service.NewPredictionCache(config.PredictionCacheTTL())
	anchorer := service.NewAnchorer(anchors, m, logger)
	predictionSvc := service.NewPredictionService(
		gateway, analyzer, predictor, cache, anchorer, m, logger, config.AnchorTimeout())
	oracleSvc := service.NewOracle(gateway, predictionSvc, m, logger)

	// Handlers
	predictionHandler := handlers.NewPredictionHandler(predictionSvc)
	oracleHandler := handlers.NewOracleHandler(oracleSvc)
	matchHandler := handlers.NewMatchHandler(gateway)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Metrics(m))
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler)
	r.Get("/metrics", m.Handler().ServeHTTP)

	r.Route("/ai", func(r chi.Router) {
		r.Post("/generate-prediction", predictionHandler.Generate)
		r.Get("/predictions/{matchID}", predictionHandler.GetByMatch)
	})

	r.Post("/oracle/resolve-market", oracleHandler.ResolveMarket)
	r.Post("/chainlink", oracleHandler.Chainlink)

	r.Get("/api/match/{matchID}", matchHandler.Get)

	return &App{
		Router:      r,
		Metrics:     m,
		Cache:       cache,
		Predictions: predictionSvc,
		Oracle:      oracleSvc,
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ensure clients satisfy the collaborator interfaces at compile time.
var (
	_ domain.SportsGateway = (*sportsdb.Client)(nil)
	_ domain.TextReasoner  = (*llm.Client)(nil)
	_ domain.TextReasoner  = (*llm.MockReasoner)(nil)
	_ domain.AnchorStore   = (*ipfs.PinataClient)(nil)
)
