package domain

import "context"

// SportsGateway is the upstream SportsDB collaborator. Implementations
// return ErrNotFound-class errors from their own package; callers that need
// a local fallback (form analysis) must degrade instead of propagating.
type SportsGateway interface {
	LookupEvent(ctx context.Context, matchID string) (*Event, error)
	SearchTeam(ctx context.Context, name string) (*TeamRecord, error)
	RecentMatches(ctx context.Context, teamID string) ([]RawMatch, error)
	NextLeagueEvents(ctx context.Context, leagueID string) ([]Event, error)
}

// TextReasoner is the opaque text-generation collaborator behind the
// prediction engine. It returns free text that is expected, but not
// guaranteed, to parse as the engine's JSON reply format.
type TextReasoner interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnchorStore is the content-addressed store collaborator. PinJSON submits
// the payload under a caller-chosen name and returns the content reference.
type AnchorStore interface {
	PinJSON(ctx context.Context, name string, payload any) (string, error)
}
