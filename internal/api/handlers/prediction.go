package handlers

import (
	"errors"
	"net/http"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/service"
	"github.com/go-chi/chi/v5"
)

type PredictionHandler struct {
	svc *service.PredictionService
}

func NewPredictionHandler(svc *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{svc: svc}
}

type predictionResponse struct {
	Success    bool               `json:"success"`
	Prediction *domain.Prediction `json:"prediction"`
	Cached     bool               `json:"cached"`
}

// Generate handles POST /ai/generate-prediction?matchId=…
// A degraded (fallback) prediction is still a success; only a missing match
// or a gateway infrastructure failure is an error.
func (h *PredictionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("matchId")
	if matchID == "" {
		writeError(w, http.StatusBadRequest, "matchId is required")
		return
	}

	prediction, cached, err := h.svc.Generate(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to generate prediction")
		return
	}

	writeJSON(w, http.StatusOK, predictionResponse{
		Success:    true,
		Prediction: prediction,
		Cached:     cached,
	})
}

// GetByMatch handles GET /ai/predictions/{matchID}.
func (h *PredictionHandler) GetByMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		writeError(w, http.StatusBadRequest, "matchID is required")
		return
	}

	prediction, cached, err := h.svc.Current(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch prediction")
		return
	}

	writeJSON(w, http.StatusOK, predictionResponse{
		Success:    true,
		Prediction: prediction,
		Cached:     cached,
	})
}
