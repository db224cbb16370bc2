package handlers

import (
	"errors"
	"net/http"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/sportsdb"
	"github.com/go-chi/chi/v5"
)

// MatchHandler serves raw match outcomes straight from the gateway.
type MatchHandler struct {
	gateway domain.SportsGateway
}

func NewMatchHandler(gateway domain.SportsGateway) *MatchHandler {
	return &MatchHandler{gateway: gateway}
}

// Get handles GET /api/match/{matchID}.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		writeError(w, http.StatusBadRequest, "matchID is required")
		return
	}

	ev, err := h.gateway.LookupEvent(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, sportsdb.ErrNotFound) {
			writeError(w, http.StatusNotFound, "match not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch match")
		return
	}

	writeJSON(w, http.StatusOK, ev.Outcome())
}
