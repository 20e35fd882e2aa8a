package domain

import "fmt"

// ResultState describes a side's standing derived from the current score.
type ResultState string

const (
	ResultWinning ResultState = "winning"
	ResultLosing  ResultState = "losing"
	ResultDrawing ResultState = "drawing"
)

// ResultFromGoals derives the result state for a side from its own and
// the opponent's goal counts.
func ResultFromGoals(own, opponent int) ResultState {
	switch {
	case own > opponent:
		return ResultWinning
	case own < opponent:
		return ResultLosing
	}
	return ResultDrawing
}

// ResultFor returns the current result state for the given team.
func (m Match) ResultFor(teamID string) ResultState {
	own, opp := m.GoalsFor(teamID)
	return ResultFromGoals(own, opp)
}

// FormatScore renders a score pair as "home-away".
func FormatScore(s Score) string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}
