package providers

import (
	"context"

	"football-events-service/internal/domain"
)

// MatchProvider defines how upstream match data is fetched and
// normalized. Dates are YYYY-MM-DD strings; providers interpret an
// empty date as "today" in UTC.
type MatchProvider interface {
	// MatchesForDate returns all matches scheduled for the given day.
	// highPriority lets the call use the reserved slice of the upstream
	// quota; it is meant for latency-sensitive live polling only.
	MatchesForDate(ctx context.Context, date string, highPriority bool) ([]domain.Match, error)

	// MatchesForTeam returns a team's matches within [dateFrom, dateTo],
	// optionally filtered by status.
	MatchesForTeam(ctx context.Context, teamID, dateFrom, dateTo string, statuses []domain.Status) ([]domain.Match, error)

	// LiveMatchesForTeam returns the team's currently running matches.
	LiveMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error)
}

// TeamDirectory resolves the upstream team reference dataset.
type TeamDirectory interface {
	Teams(ctx context.Context) ([]domain.Team, error)
}
