package domain

import "time"

// Status mirrors the upstream contract for match lifecycle states.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusTimed     Status = "TIMED"
	StatusInPlay    Status = "IN_PLAY"
	StatusPaused    Status = "PAUSED"
	StatusFinished  Status = "FINISHED"
	StatusSuspended Status = "SUSPENDED"
	StatusPostponed Status = "POSTPONED"
	StatusCancelled Status = "CANCELLED"
	StatusAwarded   Status = "AWARDED"
)

// Upcoming reports whether the match has not started yet.
func (s Status) Upcoming() bool {
	return s == StatusScheduled || s == StatusTimed
}

// Live reports whether the match is currently being played.
func (s Status) Live() bool {
	return s == StatusInPlay
}

// Terminal reports whether the match has reached a final result.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusAwarded
}

// Team represents the normalized team shape.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// Score captures home and away goals.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Match is the canonical match shape used across the service.
type Match struct {
	ID            string    `json:"id"`
	Status        Status    `json:"status"`
	Kickoff       time.Time `json:"kickoff"`
	Competition   string    `json:"competition"`
	HomeTeam      Team      `json:"homeTeam"`
	AwayTeam      Team      `json:"awayTeam"`
	Score         Score     `json:"score"`
	HalfTimeScore Score     `json:"halfTimeScore"`
	Minute        int       `json:"minute"`
}

// Involves reports whether the given team plays in this match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeam.ID == teamID || m.AwayTeam.ID == teamID
}

// IsHome reports whether the given team is the home side.
func (m Match) IsHome(teamID string) bool {
	return m.HomeTeam.ID == teamID
}

// Opponent returns the other side for the given team. The zero Team is
// returned when the team does not play in this match.
func (m Match) Opponent(teamID string) Team {
	switch teamID {
	case m.HomeTeam.ID:
		return m.AwayTeam
	case m.AwayTeam.ID:
		return m.HomeTeam
	}
	return Team{}
}

// GoalsFor returns the goal counts from the given team's perspective.
func (m Match) GoalsFor(teamID string) (own, opponent int) {
	if m.IsHome(teamID) {
		return m.Score.Home, m.Score.Away
	}
	return m.Score.Away, m.Score.Home
}
