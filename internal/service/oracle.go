package service

import (
	"context"
	"errors"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/metrics"
	"github.com/Neurvinch/rageBetAds/internal/sportsdb"
	"go.uber.org/zap"
)

// Oracle resolves prediction markets against ground truth. Resolution is a
// pure function of the finished match outcome and the stored prediction, so
// resolving the same finished match twice yields the same verdict.
type Oracle struct {
	gateway     domain.SportsGateway
	predictions *PredictionService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewOracle(gateway domain.SportsGateway, predictions *PredictionService, m *metrics.Metrics, logger *zap.Logger) *Oracle {
	return &Oracle{
		gateway:     gateway,
		predictions: predictions,
		metrics:     m,
		logger:      logger,
	}
}

// Resolve fetches the current match outcome and judges the stored prediction
// against it. A match that is not finished, or is missing a score, yields a
// pending verdict (PredictionCorrect=false with the partial data echoed
// back) rather than an error. A finished draw also yields false: the engine
// never predicts draws, so a drawn result can never match.
func (o *Oracle) Resolve(ctx context.Context, marketID int64, matchID string) (*domain.Verdict, error) {
	ev, err := o.gateway.LookupEvent(ctx, matchID)
	if err != nil {
		if errors.Is(err, sportsdb.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	outcome := ev.Outcome()

	if outcome.Status != domain.MatchFinished || outcome.HomeScore == nil || outcome.AwayScore == nil {
		o.metrics.VerdictsTotal.WithLabelValues("pending").Inc()
		o.logger.Info("match not resolvable yet",
			zap.String("match_id", matchID),
			zap.String("status", string(outcome.Status)))

		return &domain.Verdict{
			MarketID:  marketID,
			MatchID:   matchID,
			HomeScore: outcome.HomeScore,
			AwayScore: outcome.AwayScore,
			Status:    outcome.Status,
		}, nil
	}

	prior, _, err := o.predictions.Current(ctx, matchID)
	if err != nil {
		return nil, err
	}

	homeScore, awayScore := *outcome.HomeScore, *outcome.AwayScore

	var correct bool
	switch {
	case homeScore > awayScore:
		correct = prior.Winner == domain.WinnerHome
	case awayScore > homeScore:
		correct = prior.Winner == domain.WinnerAway
	default:
		// Draw: neither side is the actual winner.
		correct = false
	}

	result := "incorrect"
	if correct {
		result = "correct"
	}
	o.metrics.VerdictsTotal.WithLabelValues(result).Inc()

	o.logger.Info("market resolved",
		zap.Int64("market_id", marketID),
		zap.String("match_id", matchID),
		zap.Int("home_score", homeScore),
		zap.Int("away_score", awayScore),
		zap.String("predicted_winner", string(prior.Winner)),
		zap.Bool("prediction_correct", correct))

	return &domain.Verdict{
		MarketID:          marketID,
		MatchID:           matchID,
		PredictionCorrect: correct,
		HomeScore:         outcome.HomeScore,
		AwayScore:         outcome.AwayScore,
		Status:            outcome.Status,
	}, nil
}
