package service

import (
	"context"
	"errors"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/metrics"
	"github.com/Neurvinch/rageBetAds/internal/sportsdb"
	"go.uber.org/zap"
)

// ErrMatchNotFound is returned when the upstream has no event for the
// requested match id. It is the only prediction-pipeline error that reaches
// the HTTP boundary as a client-class failure.
var ErrMatchNotFound = errors.New("match not found")

// PredictionService runs the full fetch → analyze → predict pipeline behind
// the prediction cache, and kicks off best-effort anchoring for fresh
// predictions.
type PredictionService struct {
	gateway   domain.SportsGateway
	analyzer  *FormAnalyzer
	predictor *Predictor
	cache     *PredictionCache
	anchorer  *Anchorer
	metrics   *metrics.Metrics
	logger    *zap.Logger

	anchorTimeout time.Duration
}

func NewPredictionService(
	gateway domain.SportsGateway,
	analyzer *FormAnalyzer,
	predictor *Predictor,
	cache *PredictionCache,
	anchorer *Anchorer,
	m *metrics.Metrics,
	logger *zap.Logger,
	anchorTimeout time.Duration,
) *PredictionService {
	return &PredictionService{
		gateway:       gateway,
		analyzer:      analyzer,
		predictor:     predictor,
		cache:         cache,
		anchorer:      anchorer,
		metrics:       m,
		logger:        logger,
		anchorTimeout: anchorTimeout,
	}
}

// Generate returns the cached-or-fresh prediction for matchID and whether it
// was a cache hit. A fresh prediction is anchored asynchronously; the anchor
// hash appears on the cached record once pinning completes. The in-flight
// anchor call runs to completion regardless of the caller's context.
func (s *PredictionService) Generate(ctx context.Context, matchID string) (*domain.Prediction, bool, error) {
	p, hit, err := s.cache.GetOrCompute(ctx, matchID, func(ctx context.Context) (*domain.Prediction, error) {
		return s.compute(ctx, matchID)
	})
	if err != nil {
		return nil, false, err
	}

	s.observe(p, hit)

	if !hit {
		go func() {
			anchorCtx, cancel := context.WithTimeout(context.Background(), s.anchorTimeout)
			defer cancel()
			s.anchorer.Anchor(anchorCtx, p)
		}()
	}

	return p, hit, nil
}

// Current returns the cached-or-fresh prediction without the anchoring step.
// Used for read-style lookups and by the oracle when no prediction was
// generated ahead of the match.
func (s *PredictionService) Current(ctx context.Context, matchID string) (*domain.Prediction, bool, error) {
	p, hit, err := s.cache.GetOrCompute(ctx, matchID, func(ctx context.Context) (*domain.Prediction, error) {
		return s.compute(ctx, matchID)
	})
	if err != nil {
		return nil, false, err
	}

	s.observe(p, hit)
	return p, hit, nil
}

func (s *PredictionService) observe(p *domain.Prediction, hit bool) {
	source := "fresh"
	if hit {
		source = "cached"
	}
	s.metrics.PredictionsTotal.WithLabelValues(source).Inc()
	if !hit {
		s.metrics.PredictionConfidence.Observe(p.Confidence)
	}
}

func (s *PredictionService) compute(ctx context.Context, matchID string) (*domain.Prediction, error) {
	ev, err := s.gateway.LookupEvent(ctx, matchID)
	if err != nil {
		if errors.Is(err, sportsdb.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	mc := domain.MatchContext{
		MatchID:    ev.ID,
		HomeTeamID: ev.HomeTeamID,
		HomeTeam:   ev.HomeTeam,
		AwayTeamID: ev.AwayTeamID,
		AwayTeam:   ev.AwayTeam,
		League:     ev.League,
		Venue:      ev.Venue,
		Date:       ev.Date,
		HomeForm:   s.teamForm(ctx, ev.HomeTeam),
		AwayForm:   s.teamForm(ctx, ev.AwayTeam),
	}

	p := s.predictor.Predict(ctx, mc)
	return &p, nil
}

// teamForm resolves a team's recent form. Any gateway failure degrades to the
// Unknown sentinel so the prediction engine always gets a well-formed input.
func (s *PredictionService) teamForm(ctx context.Context, teamName string) domain.TeamForm {
	team, err := s.gateway.SearchTeam(ctx, teamName)
	if err != nil {
		s.logger.Debug("team lookup failed, form unknown",
			zap.String("team", teamName),
			zap.Error(err))
		return domain.UnknownForm(teamName)
	}

	matches, err := s.gateway.RecentMatches(ctx, team.ID)
	if err != nil {
		s.logger.Debug("recent matches fetch failed, form unknown",
			zap.String("team", teamName),
			zap.Error(err))
		return domain.UnknownForm(teamName)
	}

	return s.analyzer.Analyze(teamName, matches)
}
