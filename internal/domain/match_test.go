package domain

import "testing"

func TestParseMatchStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want MatchStatus
	}{
		{"finished - long form", "Match Finished", MatchFinished},
		{"finished - FT", "FT", MatchFinished},
		{"finished - extra time", "AET", MatchFinished},
		{"finished - penalties", "PEN", MatchFinished},
		{"scheduled - long form", "Not Started", MatchScheduled},
		{"scheduled - NS", "NS", MatchScheduled},
		{"scheduled - TBD", "TBD", MatchScheduled},
		{"inplay - first half", "1H", MatchInPlay},
		{"inplay - halftime", "HT", MatchInPlay},
		{"inplay - live", "Live", MatchInPlay},
		{"unrecognized", "Postponed", MatchUnknown},
		{"empty", "", MatchUnknown},
		{"case sensitive", "match finished", MatchUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMatchStatus(tt.raw)
			if got != tt.want {
				t.Errorf("ParseMatchStatus(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEvent_Outcome(t *testing.T) {
	hs, as := 3, 1
	ev := Event{
		ID:        "602129",
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
		HomeScore: &hs,
		AwayScore: &as,
		Status:    MatchFinished,
		RawStatus: "Match Finished",
	}

	outcome := ev.Outcome()

	if outcome.MatchID != "602129" {
		t.Errorf("MatchID = %q, want 602129", outcome.MatchID)
	}
	if outcome.HomeScore != ev.HomeScore || outcome.AwayScore != ev.AwayScore {
		t.Error("outcome should share the event's score pointers")
	}
	if outcome.Status != MatchFinished {
		t.Errorf("Status = %v, want %v", outcome.Status, MatchFinished)
	}
}

func TestPrediction_LoserName(t *testing.T) {
	p := Prediction{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Winner: WinnerHome}
	if got := p.LoserName(); got != "Chelsea" {
		t.Errorf("LoserName() = %q, want Chelsea", got)
	}

	p.Winner = WinnerAway
	if got := p.LoserName(); got != "Arsenal" {
		t.Errorf("LoserName() = %q, want Arsenal", got)
	}
}

func TestUnknownForm(t *testing.T) {
	f := UnknownForm("Arsenal")
	if f.TeamName != "Arsenal" {
		t.Errorf("TeamName = %q, want Arsenal", f.TeamName)
	}
	if f.RecentForm != "Unknown" {
		t.Errorf("RecentForm = %q, want Unknown", f.RecentForm)
	}
	if f.HomeAdvantage != 0 {
		t.Errorf("HomeAdvantage = %v, want 0", f.HomeAdvantage)
	}
}
