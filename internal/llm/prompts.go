package llm

import (
	"fmt"

	"github.com/Neurvinch/rageBetAds/internal/domain"
)

const predictionPrompt = `You are a football expert and master of trash talk. Analyze this match and provide:

1. A clear prediction for who will win (only one team)
2. A hilarious roast ONLY for the team that will lose (the other team)
3. Your confidence level (0.0 to 1.0)
4. Your reasoning

Match Context:
- Home Team: %s
- Away Team: %s
- League: %s
- Venue: %s
- Match Date: %s

Home Team Stats: %s
Away Team Stats: %s

Requirements:
- Choose ONE winner (Home Team or Away Team)
- Only roast the LOSING team (be savage but funny)
- Use emojis and modern slang
- Be creative and football-related
- Prediction should be clear: "Home Team wins" or "Away Team wins"
- Confidence should be realistic based on the data

Respond ONLY with JSON, no markdown:
{"prediction":"Home Team wins","roast_loser":"This team's attack is slower than my grandma's internet!","confidence":0.75,"reasoning":"Based on recent form and home advantage..."}`

// BuildPredictionPrompt renders the match context into the engine's prompt.
func BuildPredictionPrompt(mc domain.MatchContext) string {
	return fmt.Sprintf(predictionPrompt,
		orUnknown(mc.HomeTeam),
		orUnknown(mc.AwayTeam),
		orUnknown(mc.League),
		orUnknown(mc.Venue),
		orUnknown(mc.Date),
		formatForm(mc.HomeForm),
		formatForm(mc.AwayForm),
	)
}

func formatForm(f domain.TeamForm) string {
	return fmt.Sprintf("form=%s goals_scored=%d goals_conceded=%d wins=%d draws=%d losses=%d home_advantage=%.2f",
		f.RecentForm, f.GoalsScored, f.GoalsConceded, f.Wins, f.Draws, f.Losses, f.HomeAdvantage)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
