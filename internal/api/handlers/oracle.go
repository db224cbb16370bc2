package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/service"
)

type OracleHandler struct {
	oracle *service.Oracle
}

func NewOracleHandler(oracle *service.Oracle) *OracleHandler {
	return &OracleHandler{oracle: oracle}
}

type resolveMarketRequest struct {
	MarketID int64  `json:"market_id"`
	MatchID  string `json:"match_id"`
}

type resolveMarketResponse struct {
	Success bool            `json:"success"`
	Verdict *domain.Verdict `json:"verdict"`
}

// ResolveMarket handles POST /oracle/resolve-market.
func (h *OracleHandler) ResolveMarket(w http.ResponseWriter, r *http.Request) {
	var req resolveMarketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.MatchID == "" {
		writeError(w, http.StatusBadRequest, "match_id is required")
		return
	}

	verdict, err := h.oracle.Resolve(r.Context(), req.MarketID, req.MatchID)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to resolve market")
		return
	}

	writeJSON(w, http.StatusOK, resolveMarketResponse{
		Success: true,
		Verdict: verdict,
	})
}

// chainlink external-adapter envelope. Adapter errors are reported in-body
// with an HTTP 200, per the adapter convention.
type chainlinkRequest struct {
	ID   string `json:"id"`
	Data struct {
		MatchID string `json:"matchId"`
	} `json:"data"`
}

type chainlinkResponse struct {
	JobRunID   string         `json:"jobRunID"`
	Data       map[string]any `json:"data,omitempty"`
	Result     *bool          `json:"result,omitempty"`
	Error      string         `json:"error,omitempty"`
	StatusCode int            `json:"statusCode"`
}

// Chainlink handles POST /chainlink, the mock external-adapter surface.
// It wraps the oracle resolver in the adapter envelope; a match that is not
// finished is an adapter error, not a pending verdict.
func (h *OracleHandler) Chainlink(w http.ResponseWriter, r *http.Request) {
	var req chainlinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, chainlinkResponse{
			Error:      "invalid request body",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	if req.Data.MatchID == "" {
		writeJSON(w, http.StatusOK, chainlinkResponse{
			JobRunID:   req.ID,
			Error:      "missing matchId",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	verdict, err := h.oracle.Resolve(r.Context(), 0, req.Data.MatchID)
	if err != nil {
		writeJSON(w, http.StatusOK, chainlinkResponse{
			JobRunID:   req.ID,
			Error:      err.Error(),
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	if verdict.Status != domain.MatchFinished {
		writeJSON(w, http.StatusOK, chainlinkResponse{
			JobRunID:   req.ID,
			Error:      "match not finished yet",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	correct := verdict.PredictionCorrect
	writeJSON(w, http.StatusOK, chainlinkResponse{
		JobRunID: req.ID,
		Data: map[string]any{
			"aiWasRight": verdict.PredictionCorrect,
			"homeScore":  verdict.HomeScore,
			"awayScore":  verdict.AwayScore,
			"status":     verdict.Status,
		},
		Result:     &correct,
		StatusCode: http.StatusOK,
	})
}
