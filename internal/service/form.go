package service

import (
	"strings"

	"github.com/Neurvinch/rageBetAds/internal/domain"
	"go.uber.org/zap"
)

// FormAnalyzer converts a team's raw recent match records into a TeamForm
// summary. Analyze is a pure transform and never fails; callers that cannot
// produce input records pass nil and get the Unknown sentinel back.
type FormAnalyzer struct {
	logger *zap.Logger
}

func NewFormAnalyzer(logger *zap.Logger) *FormAnalyzer {
	return &FormAnalyzer{logger: logger}
}

// Analyze processes up to the domain.FormWindow most recent records in which
// teamName appears as the home or away side (exact, case-sensitive match).
// Missing scores count as 0. Records where the team does not appear are
// skipped and do not consume the window.
func (a *FormAnalyzer) Analyze(teamName string, matches []domain.RawMatch) domain.TeamForm {
	if len(matches) > domain.FormWindow {
		matches = matches[:domain.FormWindow]
	}

	form := domain.TeamForm{TeamName: teamName}
	var outcomes strings.Builder

	for _, m := range matches {
		var goalsFor, goalsAgainst int
		switch teamName {
		case m.HomeTeam:
			goalsFor = scoreOrZero(m.HomeScore)
			goalsAgainst = scoreOrZero(m.AwayScore)
		case m.AwayTeam:
			goalsFor = scoreOrZero(m.AwayScore)
			goalsAgainst = scoreOrZero(m.HomeScore)
		default:
			continue
		}

		form.GoalsScored += goalsFor
		form.GoalsConceded += goalsAgainst

		switch {
		case goalsFor > goalsAgainst:
			form.Wins++
			outcomes.WriteByte('W')
		case goalsFor == goalsAgainst:
			form.Draws++
			outcomes.WriteByte('D')
		default:
			form.Losses++
			outcomes.WriteByte('L')
		}
	}

	if outcomes.Len() == 0 {
		return domain.UnknownForm(teamName)
	}

	form.RecentForm = outcomes.String()
	form.HomeAdvantage = domain.HomeAdvantageCoefficient
	return form
}

func scoreOrZero(s *int) int {
	if s == nil {
		return 0
	}
	return *s
}
