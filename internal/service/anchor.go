package service

import (
	"context"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/metrics"
	"go.uber.org/zap"
)

const anchorNamePrefix = "rage-bet-prediction-"

// Anchorer persists finalized predictions to the content-addressed store.
// It holds no state of its own; each Anchor call is a one-shot side effect.
// Anchoring failure is never fatal: the prediction stays valid without a
// hash, so Anchor reports failure only by returning an empty reference.
type Anchorer struct {
	store   domain.AnchorStore
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewAnchorer(store domain.AnchorStore, m *metrics.Metrics, logger *zap.Logger) *Anchorer {
	return &Anchorer{store: store, metrics: m, logger: logger}
}

// Anchor serializes the full prediction, pins it under a name derived from
// the match id, and attaches the returned hash to the prediction in place so
// later reads of the cached record see it.
func (a *Anchorer) Anchor(ctx context.Context, p *domain.Prediction) string {
	hash, err := a.store.PinJSON(ctx, anchorNamePrefix+p.MatchID, p)
	if err != nil {
		a.metrics.AnchorsTotal.WithLabelValues("failed").Inc()
		a.logger.Warn("anchoring failed, prediction kept without anchor",
			zap.String("match_id", p.MatchID),
			zap.Error(err))
		return ""
	}

	a.metrics.AnchorsTotal.WithLabelValues("pinned").Inc()
	a.logger.Info("prediction anchored",
		zap.String("match_id", p.MatchID),
		zap.String("anchor_hash", hash))

	p.AnchorHash = hash
	return hash
}
