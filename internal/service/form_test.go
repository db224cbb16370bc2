package service

import (
	"testing"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFormAnalyzer_Analyze(t *testing.T) {
	analyzer := NewFormAnalyzer(zap.NewNop())

	matches := []domain.RawMatch{
		{HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeScore: intPtr(3), AwayScore: intPtr(1)},
		{HomeTeam: "Liverpool", AwayTeam: "Arsenal", HomeScore: intPtr(2), AwayScore: intPtr(2)},
		{HomeTeam: "Arsenal", AwayTeam: "Spurs", HomeScore: intPtr(0), AwayScore: intPtr(1)},
	}

	form := analyzer.Analyze("Arsenal", matches)

	assert.Equal(t, "Arsenal", form.TeamName)
	assert.Equal(t, "WDL", form.RecentForm)
	assert.Equal(t, 1, form.Wins)
	assert.Equal(t, 1, form.Draws)
	assert.Equal(t, 1, form.Losses)
	assert.Equal(t, 5, form.GoalsScored)
	assert.Equal(t, 4, form.GoalsConceded)
	assert.Equal(t, domain.HomeAdvantageCoefficient, form.HomeAdvantage)
}

func TestFormAnalyzer_Analyze_WindowLimit(t *testing.T) {
	analyzer := NewFormAnalyzer(zap.NewNop())

	var matches []domain.RawMatch
	for i := 0; i < domain.FormWindow+3; i++ {
		matches = append(matches, domain.RawMatch{
			HomeTeam: "Arsenal", AwayTeam: "Chelsea",
			HomeScore: intPtr(1), AwayScore: intPtr(0),
		})
	}

	form := analyzer.Analyze("Arsenal", matches)

	assert.Equal(t, domain.FormWindow, form.Wins+form.Draws+form.Losses)
	assert.Len(t, form.RecentForm, domain.FormWindow)
}

func TestFormAnalyzer_Analyze_MissingScoresCountZero(t *testing.T) {
	analyzer := NewFormAnalyzer(zap.NewNop())

	matches := []domain.RawMatch{
		{HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeScore: nil, AwayScore: intPtr(2)},
		{HomeTeam: "Chelsea", AwayTeam: "Arsenal", HomeScore: nil, AwayScore: nil},
	}

	form := analyzer.Analyze("Arsenal", matches)

	assert.Equal(t, "LD", form.RecentForm)
	assert.Equal(t, 0, form.GoalsScored)
	assert.Equal(t, 2, form.GoalsConceded)
}

func TestFormAnalyzer_Analyze_NoQualifyingRecords(t *testing.T) {
	analyzer := NewFormAnalyzer(zap.NewNop())

	matches := []domain.RawMatch{
		{HomeTeam: "Liverpool", AwayTeam: "Chelsea", HomeScore: intPtr(1), AwayScore: intPtr(1)},
	}

	form := analyzer.Analyze("Arsenal", matches)

	assert.Equal(t, domain.UnknownForm("Arsenal"), form)
	assert.Equal(t, "Unknown", form.RecentForm)
	assert.Zero(t, form.HomeAdvantage)
}

func TestFormAnalyzer_Analyze_NilMatches(t *testing.T) {
	analyzer := NewFormAnalyzer(zap.NewNop())

	form := analyzer.Analyze("Arsenal", nil)

	assert.Equal(t, domain.UnknownForm("Arsenal"), form)
}

func TestFormAnalyzer_Analyze_NameMatchIsCaseSensitive(t *testing.T) {
	analyzer := NewFormAnalyzer(zap.NewNop())

	matches := []domain.RawMatch{
		{HomeTeam: "arsenal", AwayTeam: "Chelsea", HomeScore: intPtr(4), AwayScore: intPtr(0)},
	}

	form := analyzer.Analyze("Arsenal", matches)

	assert.Equal(t, domain.UnknownForm("Arsenal"), form)
}

func TestFormAnalyzer_Analyze_SkippedRecordsDoNotConsumeWindow(t *testing.T) {
	analyzer := NewFormAnalyzer(zap.NewNop())

	// Only the first FormWindow entries are considered, even if some of them
	// do not involve the team at all.
	matches := []domain.RawMatch{
		{HomeTeam: "Liverpool", AwayTeam: "Spurs", HomeScore: intPtr(1), AwayScore: intPtr(0)},
		{HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeScore: intPtr(2), AwayScore: intPtr(0)},
		{HomeTeam: "Liverpool", AwayTeam: "Everton", HomeScore: intPtr(3), AwayScore: intPtr(3)},
		{HomeTeam: "Chelsea", AwayTeam: "Arsenal", HomeScore: intPtr(0), AwayScore: intPtr(0)},
		{HomeTeam: "Spurs", AwayTeam: "Everton", HomeScore: intPtr(2), AwayScore: intPtr(1)},
		{HomeTeam: "Arsenal", AwayTeam: "Spurs", HomeScore: intPtr(5), AwayScore: intPtr(0)},
	}

	form := analyzer.Analyze("Arsenal", matches)

	// The sixth record is past the window despite three skips inside it.
	assert.Equal(t, "WD", form.RecentForm)
	assert.Equal(t, 1, form.Wins)
	assert.Equal(t, 1, form.Draws)
}
