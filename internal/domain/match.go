package domain

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchInPlay    MatchStatus = "inplay"
	MatchFinished  MatchStatus = "finished"
	MatchUnknown   MatchStatus = "unknown"
)

// ParseMatchStatus maps the free-text status strings SportsDB returns onto
// the internal lifecycle states. Anything unrecognized is MatchUnknown.
func ParseMatchStatus(raw string) MatchStatus {
	switch raw {
	case "Match Finished", "FT", "AET", "PEN":
		return MatchFinished
	case "Not Started", "NS", "Time to be defined", "TBD":
		return MatchScheduled
	case "1H", "2H", "HT", "ET", "Live", "In Play":
		return MatchInPlay
	default:
		return MatchUnknown
	}
}

func ValidMatchStatus(s string) bool {
	switch MatchStatus(s) {
	case MatchScheduled, MatchInPlay, MatchFinished, MatchUnknown:
		return true
	}
	return false
}

// Event is a single SportsDB event with everything both the prediction
// pipeline (names, league, venue, date) and the oracle (scores, status) need.
type Event struct {
	ID         string      `json:"id"`
	HomeTeamID string      `json:"home_team_id"`
	HomeTeam   string      `json:"home_team"`
	AwayTeamID string      `json:"away_team_id"`
	AwayTeam   string      `json:"away_team"`
	League     string      `json:"league"`
	Venue      string      `json:"venue"`
	Date       string      `json:"date"`
	HomeScore  *int        `json:"home_score"`
	AwayScore  *int        `json:"away_score"`
	Status     MatchStatus `json:"status"`
	RawStatus  string      `json:"raw_status"`
}

// Outcome projects the event onto the ground-truth view the oracle consumes.
func (e *Event) Outcome() MatchOutcome {
	return MatchOutcome{
		MatchID:   e.ID,
		HomeTeam:  e.HomeTeam,
		AwayTeam:  e.AwayTeam,
		HomeScore: e.HomeScore,
		AwayScore: e.AwayScore,
		Status:    e.Status,
		RawStatus: e.RawStatus,
	}
}

// MatchOutcome is the upstream's view of a match result. Score pointers are
// nil until the upstream reports them; once Status is MatchFinished the
// outcome is treated as immutable ground truth.
type MatchOutcome struct {
	MatchID   string      `json:"match_id"`
	HomeTeam  string      `json:"home_team"`
	AwayTeam  string      `json:"away_team"`
	HomeScore *int        `json:"home_score"`
	AwayScore *int        `json:"away_score"`
	Status    MatchStatus `json:"status"`
	RawStatus string      `json:"raw_status"`
}

// RawMatch is one historical match record as returned by the gateway's
// recent-matches listing. Scores may be missing for abandoned fixtures.
type RawMatch struct {
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Date      string `json:"date"`
}

// TeamRecord is the gateway's team identity record.
type TeamRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	League  string `json:"league"`
	Stadium string `json:"stadium"`
}
