package sportsdb

import (
	"bytes"
	"strconv"

	"github.com/Neurvinch/rageBetAds/internal/domain"
)

// score tolerates the upstream's inconsistent score encoding: JSON numbers,
// numeric strings, empty strings, and nulls all appear in the wild.
type score struct {
	n  int
	ok bool
}

func (s *score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		unquoted := string(data[1 : len(data)-1])
		if unquoted == "" {
			return nil
		}
		n, err := strconv.Atoi(unquoted)
		if err != nil {
			return nil
		}
		s.n, s.ok = n, true
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return nil
	}
	s.n, s.ok = n, true
	return nil
}

func (s score) val() *int {
	if !s.ok {
		return nil
	}
	n := s.n
	return &n
}

type rawEvent struct {
	ID         string `json:"idEvent"`
	HomeTeamID string `json:"idHomeTeam"`
	HomeTeam   string `json:"strHomeTeam"`
	AwayTeamID string `json:"idAwayTeam"`
	AwayTeam   string `json:"strAwayTeam"`
	League     string `json:"strLeague"`
	Venue      string `json:"strVenue"`
	Date       string `json:"dateEvent"`
	HomeScore  score  `json:"intHomeScore"`
	AwayScore  score  `json:"intAwayScore"`
	Status     string `json:"strStatus"`
}

func (e rawEvent) toDomain() domain.Event {
	return domain.Event{
		ID:         e.ID,
		HomeTeamID: e.HomeTeamID,
		HomeTeam:   e.HomeTeam,
		AwayTeamID: e.AwayTeamID,
		AwayTeam:   e.AwayTeam,
		League:     e.League,
		Venue:      e.Venue,
		Date:       e.Date,
		HomeScore:  e.HomeScore.val(),
		AwayScore:  e.AwayScore.val(),
		Status:     domain.ParseMatchStatus(e.Status),
		RawStatus:  e.Status,
	}
}

type rawTeam struct {
	ID      string `json:"idTeam"`
	Name    string `json:"strTeam"`
	League  string `json:"strLeague"`
	Stadium string `json:"strStadium"`
}
