package sportsdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/Neurvinch/rageBetAds/internal/httpx"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://www.thesportsdb.com/api/v1/json"

// ErrNotFound is returned when the upstream has no record for the requested id.
var ErrNotFound = errors.New("sportsdb: not found")

// Client is the SportsDB gateway collaborator. All calls are idempotent GETs
// behind a shared rate-limited, retrying HTTP client.
type Client struct {
	baseURL string
	http    *httpx.Client
	logger  *zap.Logger
}

func New(apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: fmt.Sprintf("%s/%s", defaultBaseURL, apiKey),
		http: httpx.New(httpx.Options{
			Timeout:         timeout,
			RequestsPerSec:  5,
			MaxRetryElapsed: timeout,
		}),
		logger: logger,
	}
}

// NewWithBaseURL builds a client against an explicit base URL, for tests.
func NewWithBaseURL(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	c := New("", timeout, logger)
	c.baseURL = baseURL
	return c
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create sportsdb request: %w", err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("sportsdb request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode sportsdb response: %w", err)
	}
	return nil
}

func (c *Client) LookupEvent(ctx context.Context, matchID string) (*domain.Event, error) {
	var payload struct {
		Events []rawEvent `json:"events"`
	}
	if err := c.get(ctx, "lookupevent.php?id="+url.QueryEscape(matchID), &payload); err != nil {
		return nil, err
	}
	if len(payload.Events) == 0 {
		return nil, ErrNotFound
	}

	ev := payload.Events[0].toDomain()
	return &ev, nil
}

func (c *Client) SearchTeam(ctx context.Context, name string) (*domain.TeamRecord, error) {
	var payload struct {
		Teams []rawTeam `json:"teams"`
	}
	if err := c.get(ctx, "searchteams.php?t="+url.QueryEscape(name), &payload); err != nil {
		return nil, err
	}
	if len(payload.Teams) == 0 {
		return nil, ErrNotFound
	}

	t := payload.Teams[0]
	return &domain.TeamRecord{
		ID:      t.ID,
		Name:    t.Name,
		League:  t.League,
		Stadium: t.Stadium,
	}, nil
}

func (c *Client) RecentMatches(ctx context.Context, teamID string) ([]domain.RawMatch, error) {
	var payload struct {
		Results []rawEvent `json:"results"`
	}
	if err := c.get(ctx, "eventslast.php?id="+url.QueryEscape(teamID), &payload); err != nil {
		return nil, err
	}

	matches := make([]domain.RawMatch, 0, len(payload.Results))
	for _, ev := range payload.Results {
		matches = append(matches, domain.RawMatch{
			HomeTeam:  ev.HomeTeam,
			AwayTeam:  ev.AwayTeam,
			HomeScore: ev.HomeScore.val(),
			AwayScore: ev.AwayScore.val(),
			Date:      ev.Date,
		})
	}
	return matches, nil
}

func (c *Client) NextLeagueEvents(ctx context.Context, leagueID string) ([]domain.Event, error) {
	var payload struct {
		Events []rawEvent `json:"events"`
	}
	if err := c.get(ctx, "eventsnextleague.php?id="+url.QueryEscape(leagueID), &payload); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(payload.Events))
	for _, ev := range payload.Events {
		events = append(events, ev.toDomain())
	}
	return events, nil
}
