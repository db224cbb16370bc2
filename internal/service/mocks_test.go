package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/llm"
	"github.com/Neurvinch/rageBetAds/internal/metrics"
	"github.com/Neurvinch/rageBetAds/internal/sportsdb"
	"go.uber.org/zap"
)

// mockGateway is an in-memory SportsGateway. Populate the maps with fixtures;
// anything not present behaves like an upstream miss.
type mockGateway struct {
	events  map[string]*domain.Event
	teams   map[string]*domain.TeamRecord
	recent  map[string][]domain.RawMatch
	failAll bool

	lookupCalls int
}

func newMockGateway() *mockGateway {
	return &mockGateway{
		events: make(map[string]*domain.Event),
		teams:  make(map[string]*domain.TeamRecord),
		recent: make(map[string][]domain.RawMatch),
	}
}

func (g *mockGateway) LookupEvent(ctx context.Context, matchID string) (*domain.Event, error) {
	g.lookupCalls++
	if g.failAll {
		return nil, errors.New("gateway down")
	}
	ev, ok := g.events[matchID]
	if !ok {
		return nil, sportsdb.ErrNotFound
	}
	return ev, nil
}

func (g *mockGateway) SearchTeam(ctx context.Context, name string) (*domain.TeamRecord, error) {
	if g.failAll {
		return nil, errors.New("gateway down")
	}
	team, ok := g.teams[name]
	if !ok {
		return nil, sportsdb.ErrNotFound
	}
	return team, nil
}

func (g *mockGateway) RecentMatches(ctx context.Context, teamID string) ([]domain.RawMatch, error) {
	if g.failAll {
		return nil, errors.New("gateway down")
	}
	matches, ok := g.recent[teamID]
	if !ok {
		return nil, sportsdb.ErrNotFound
	}
	return matches, nil
}

func (g *mockGateway) NextLeagueEvents(ctx context.Context, leagueID string) ([]domain.Event, error) {
	if g.failAll {
		return nil, errors.New("gateway down")
	}
	return nil, nil
}

// mockAnchorStore records PinJSON calls and returns a fixed hash or error.
// The anchoring service calls PinJSON from a goroutine, so access is locked.
type mockAnchorStore struct {
	mu    sync.Mutex
	hash  string
	err   error
	names []string
}

func (m *mockAnchorStore) PinJSON(ctx context.Context, name string, payload any) (string, error) {
	m.mu.Lock()
	m.names = append(m.names, name)
	m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.hash, nil
}

func (m *mockAnchorStore) pinnedNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.names...)
}

func intPtr(v int) *int { return &v }

func finishedEvent(id, home, away string, hs, as int) *domain.Event {
	return &domain.Event{
		ID:        id,
		HomeTeam:  home,
		AwayTeam:  away,
		League:    "English Premier League",
		HomeScore: intPtr(hs),
		AwayScore: intPtr(as),
		Status:    domain.MatchFinished,
		RawStatus: "Match Finished",
	}
}

func scheduledEvent(id, home, away string) *domain.Event {
	return &domain.Event{
		ID:        id,
		HomeTeam:  home,
		AwayTeam:  away,
		League:    "English Premier League",
		Status:    domain.MatchScheduled,
		RawStatus: "Not Started",
	}
}

// newTestPredictionService wires a full pipeline over the given collaborators
// with deterministic randomness and a nop logger.
func newTestPredictionService(gateway domain.SportsGateway, reasoner domain.TextReasoner, anchors domain.AnchorStore) (*PredictionService, *metrics.Metrics) {
	logger := zap.NewNop()
	m := metrics.New()
	rng := rand.New(rand.NewSource(1))

	analyzer := NewFormAnalyzer(logger)
	predictor := NewPredictor(reasoner, rng, m, logger)
	cache := NewPredictionCache(DefaultCacheTTL)
	anchorer := NewAnchorer(anchors, m, logger)

	return NewPredictionService(gateway, analyzer, predictor, cache, anchorer, m, logger, time.Second), m
}

var _ domain.SportsGateway = (*mockGateway)(nil)
var _ domain.AnchorStore = (*mockAnchorStore)(nil)
var _ domain.TextReasoner = (*llm.MockReasoner)(nil)
