package engine

import (
	"context"

	"football-events-service/internal/domain"
	"football-events-service/internal/timeutil"
)

// LiveMatch returns the team's currently running match from the
// snapshot cache. No network call is made.
func (e *Engine) LiveMatch(teamID string) (domain.Match, bool) {
	return e.cache.find(func(m domain.Match) bool {
		if !m.Involves(teamID) {
			return false
		}
		return m.Status == domain.StatusInPlay || m.Status == domain.StatusPaused
	})
}

// TodayMatch returns the team's match on the current UTC day from the
// snapshot cache. No network call is made.
func (e *Engine) TodayMatch(teamID string) (domain.Match, bool) {
	now := e.now()
	return e.cache.find(func(m domain.Match) bool {
		return m.Involves(teamID) && timeutil.SameDay(m.Kickoff, now)
	})
}

// NextMatch looks up the team's next scheduled match upstream. Errors
// here are local to the caller; they never disturb the polling loop.
func (e *Engine) NextMatch(ctx context.Context, teamID string) (domain.Match, bool, error) {
	now := e.now().UTC()
	from := timeutil.FormatDate(now)
	to := timeutil.FormatDate(now.Add(nextMatchHorizon))

	matches, err := e.lookup.MatchesForTeam(ctx, teamID, from, to,
		[]domain.Status{domain.StatusScheduled, domain.StatusTimed})
	if err != nil {
		return domain.Match{}, false, err
	}
	if len(matches) == 0 {
		return domain.Match{}, false, nil
	}
	sortByKickoff(matches)
	return matches[0], true, nil
}
