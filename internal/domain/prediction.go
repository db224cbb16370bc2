package domain

import "time"

type Winner string

const (
	WinnerHome Winner = "home"
	WinnerAway Winner = "away"
)

func ValidWinner(w string) bool {
	switch Winner(w) {
	case WinnerHome, WinnerAway:
		return true
	}
	return false
}

// FormWindow is the number of most recent matches a team's form is built from.
const FormWindow = 5

// HomeAdvantageCoefficient is the static home-advantage weighting applied to
// every analyzed team. Kept as a named constant so a per-league model can
// replace it without touching callers.
const HomeAdvantageCoefficient = 0.1

// TeamForm is a compact statistical summary of a team's recent results.
// Invariant: Wins+Draws+Losses equals the number of qualifying records
// processed, which is at most FormWindow.
type TeamForm struct {
	TeamName      string  `json:"team_name"`
	RecentForm    string  `json:"recent_form"`
	GoalsScored   int     `json:"goals_scored"`
	GoalsConceded int     `json:"goals_conceded"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	HomeAdvantage float64 `json:"home_advantage"`
}

// UnknownForm is the sentinel TeamForm used when a team has no qualifying
// history (not found upstream, or the gateway failed).
func UnknownForm(teamName string) TeamForm {
	return TeamForm{TeamName: teamName, RecentForm: "Unknown"}
}

// MatchContext carries everything the prediction engine needs about one
// fixture. It is built once per prediction request and not mutated after.
type MatchContext struct {
	MatchID    string   `json:"match_id"`
	HomeTeamID string   `json:"home_team_id"`
	HomeTeam   string   `json:"home_team"`
	AwayTeamID string   `json:"away_team_id"`
	AwayTeam   string   `json:"away_team"`
	League     string   `json:"league"`
	Venue      string   `json:"venue"`
	Date       string   `json:"date"`
	HomeForm   TeamForm `json:"home_form"`
	AwayForm   TeamForm `json:"away_form"`
}

// Prediction is the engine's output for one match. Winner is always home or
// away, never a draw, and Confidence is clamped to [0,1] before the value is
// stored anywhere. AnchorHash is attached after the fact by the anchoring
// service and is the only field mutated post-construction.
type Prediction struct {
	MatchID    string    `json:"match_id"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	League     string    `json:"league"`
	Winner     Winner    `json:"predicted_winner"`
	RoastLoser string    `json:"roast_loser"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	AnchorHash string    `json:"anchor_hash,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoserName returns the side the roast is allowed to target.
func (p *Prediction) LoserName() string {
	if p.Winner == WinnerHome {
		return p.AwayTeam
	}
	return p.HomeTeam
}

// Verdict is the oracle's judgment of a stored prediction against the real
// result. For a match that is not yet finished (or has missing scores) the
// verdict echoes the partial data with PredictionCorrect=false; that is a
// "not yet resolvable" signal, not an error.
type Verdict struct {
	MarketID          int64       `json:"market_id"`
	MatchID           string      `json:"match_id"`
	PredictionCorrect bool        `json:"prediction_correct"`
	HomeScore         *int        `json:"home_score"`
	AwayScore         *int        `json:"away_score"`
	Status            MatchStatus `json:"status"`
}
