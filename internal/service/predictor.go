package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/llm"
	"github.com/Neurvinch/rageBetAds/internal/metrics"
	"go.uber.org/zap"
)

// Fallback confidence levels. A transport-level failure degrades harder than
// a reply that arrived but could not be parsed.
const (
	fallbackConfidenceUnavailable = 0.5
	fallbackConfidenceMalformed   = 0.6
)

const (
	fallbackCauseUnavailable = "reasoner unavailable"
	fallbackCauseMalformed   = "malformed reasoner response"
)

var fallbackRoasts = []string{
	"%s is going to get absolutely destroyed!",
	"%s better prepare for a brutal reality check!",
	"%s's defense has more holes than Swiss cheese!",
	"%s is about to trend for all the wrong reasons!",
}

// Predictor is the prediction engine. It combines two TeamForm summaries and
// the text reasoner into a single Prediction. It never returns an error:
// collaborator unavailability, timeouts, and malformed replies all degrade to
// a deterministic fallback with a lower confidence.
type Predictor struct {
	reasoner domain.TextReasoner
	rng      *rand.Rand
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

func NewPredictor(reasoner domain.TextReasoner, rng *rand.Rand, m *metrics.Metrics, logger *zap.Logger) *Predictor {
	return &Predictor{
		reasoner: reasoner,
		rng:      rng,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// reasonerReply is the JSON document the reasoner is asked to produce.
// Pointer fields distinguish "omitted" from zero values.
type reasonerReply struct {
	Prediction string   `json:"prediction"`
	RoastLoser string   `json:"roast_loser"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

func (p *Predictor) Predict(ctx context.Context, mc domain.MatchContext) domain.Prediction {
	prompt := llm.BuildPredictionPrompt(mc)

	start := p.now()
	raw, err := p.reasoner.Generate(ctx, prompt)
	p.metrics.ReasonerLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		p.logger.Warn("reasoner call failed, using fallback",
			zap.String("match_id", mc.MatchID),
			zap.Error(err))
		return p.fallback(mc, fallbackCauseUnavailable, fallbackConfidenceUnavailable)
	}

	reply, err := parseReasonerReply(raw)
	if err != nil {
		p.logger.Warn("reasoner reply unusable, using fallback",
			zap.String("match_id", mc.MatchID),
			zap.Error(err))
		return p.fallback(mc, fallbackCauseMalformed, fallbackConfidenceMalformed)
	}

	winner, err := normalizeWinner(reply.Prediction, mc)
	if err != nil {
		p.logger.Warn("reasoner picked no usable winner, using fallback",
			zap.String("match_id", mc.MatchID),
			zap.String("prediction", reply.Prediction),
			zap.Error(err))
		return p.fallback(mc, fallbackCauseMalformed, fallbackConfidenceMalformed)
	}

	return domain.Prediction{
		MatchID:    mc.MatchID,
		HomeTeam:   mc.HomeTeam,
		AwayTeam:   mc.AwayTeam,
		League:     mc.League,
		Winner:     winner,
		RoastLoser: reply.RoastLoser,
		Confidence: clampConfidence(*reply.Confidence),
		Reasoning:  reply.Reasoning,
		CreatedAt:  p.now(),
	}
}

// fallback returns the deterministic degraded prediction: the home side wins,
// the roast targets the away side, and the reasoning tags the cause.
func (p *Predictor) fallback(mc domain.MatchContext, cause string, confidence float64) domain.Prediction {
	p.metrics.FallbacksTotal.WithLabelValues(fallbackLabel(cause)).Inc()

	roast := fmt.Sprintf(fallbackRoasts[p.rng.Intn(len(fallbackRoasts))], mc.AwayTeam)

	return domain.Prediction{
		MatchID:    mc.MatchID,
		HomeTeam:   mc.HomeTeam,
		AwayTeam:   mc.AwayTeam,
		League:     mc.League,
		Winner:     domain.WinnerHome,
		RoastLoser: roast,
		Confidence: confidence,
		Reasoning:  "Fallback prediction: " + cause,
		CreatedAt:  p.now(),
	}
}

func fallbackLabel(cause string) string {
	if cause == fallbackCauseUnavailable {
		return "unavailable"
	}
	return "malformed"
}

func parseReasonerReply(raw string) (*reasonerReply, error) {
	// Strip markdown fences if present
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var reply reasonerReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("parse reasoner reply: %w (raw: %s)", err, raw)
	}

	if reply.Prediction == "" || reply.RoastLoser == "" || reply.Confidence == nil {
		return nil, fmt.Errorf("reasoner reply missing required fields (raw: %s)", raw)
	}

	return &reply, nil
}

// normalizeWinner maps the reasoner's free-text pick onto home or away.
// Draws are not a valid output; an ambiguous or drawn pick is an error so the
// engine falls back instead of guessing.
func normalizeWinner(prediction string, mc domain.MatchContext) (domain.Winner, error) {
	text := strings.ToLower(prediction)

	if strings.Contains(text, "draw") {
		return "", fmt.Errorf("draw is not a valid prediction")
	}

	home := strings.Contains(text, "home") ||
		(mc.HomeTeam != "" && strings.Contains(text, strings.ToLower(mc.HomeTeam)))
	away := strings.Contains(text, "away") ||
		(mc.AwayTeam != "" && strings.Contains(text, strings.ToLower(mc.AwayTeam)))

	switch {
	case home && !away:
		return domain.WinnerHome, nil
	case away && !home:
		return domain.WinnerAway, nil
	default:
		return "", fmt.Errorf("ambiguous winner %q", prediction)
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
