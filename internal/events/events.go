package events

import (
	"time"

	"football-events-service/internal/domain"
)

// Kind identifies an event variant on the wire and in metrics.
type Kind string

const (
	KindTeamScored        Kind = "team_scored"
	KindTeamConceded      Kind = "team_conceded"
	KindMatchKickoff      Kind = "match_kickoff"
	KindHalftimeStarted   Kind = "halftime_started"
	KindSecondHalfStarted Kind = "second_half_started"
	KindExtraTimeStarted  Kind = "extra_time_started"
	KindTeamWon           Kind = "team_won"
	KindTeamLost          Kind = "team_lost"
	KindTeamDrew          Kind = "team_drew"
	KindMatchStartsSoon   Kind = "match_starts_soon"
	KindMatchFinished     Kind = "match_finished"
	KindResultChanged     Kind = "match_result_changed"
)

// Event is a typed notification addressed to a single tracked team.
// Each variant is a concrete struct so payload shapes are checked at
// compile time rather than through a string-keyed bag.
type Event interface {
	// Team returns the tracked team the event is addressed to.
	Team() string
	// Kind returns the variant identifier.
	Kind() Kind
}

// TeamScored fires when the addressed team's goal count increases.
type TeamScored struct {
	TeamID    string `json:"team_id"`
	MatchID   string `json:"match_id"`
	Score     int    `json:"score"`
	Minute    int    `json:"minute"`
	Opponent  string `json:"opponent"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

func (e TeamScored) Team() string { return e.TeamID }
func (e TeamScored) Kind() Kind   { return KindTeamScored }

// TeamConceded fires when the opposing side's goal count increases.
type TeamConceded struct {
	TeamID      string `json:"team_id"`
	MatchID     string `json:"match_id"`
	Score       int    `json:"score"`
	Minute      int    `json:"minute"`
	ScoringTeam string `json:"scoring_team"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
}

func (e TeamConceded) Team() string { return e.TeamID }
func (e TeamConceded) Kind() Kind   { return KindTeamConceded }

// MatchKickoff fires once when a match goes in play.
type MatchKickoff struct {
	TeamID      string `json:"team_id"`
	MatchID     string `json:"match_id"`
	Opponent    string `json:"opponent"`
	Competition string `json:"competition"`
	IsHome      bool   `json:"is_home"`
}

func (e MatchKickoff) Team() string { return e.TeamID }
func (e MatchKickoff) Kind() Kind   { return KindMatchKickoff }

// HalftimeStarted fires once when the match pauses at the break.
type HalftimeStarted struct {
	TeamID        string `json:"team_id"`
	MatchID       string `json:"match_id"`
	HalftimeScore string `json:"halftime_score"`
	Opponent      string `json:"opponent"`
	HomeScore     int    `json:"home_score"`
	AwayScore     int    `json:"away_score"`
}

func (e HalftimeStarted) Team() string { return e.TeamID }
func (e HalftimeStarted) Kind() Kind   { return KindHalftimeStarted }

// SecondHalfStarted fires once when play resumes after the break.
type SecondHalfStarted struct {
	TeamID   string `json:"team_id"`
	MatchID  string `json:"match_id"`
	Score    string `json:"score"`
	Opponent string `json:"opponent"`
}

func (e SecondHalfStarted) Team() string { return e.TeamID }
func (e SecondHalfStarted) Kind() Kind   { return KindSecondHalfStarted }

// ExtraTimeStarted is part of the published catalogue but has no
// detector trigger; upstream statuses do not distinguish extra time
// from regular play. It is kept for downstream consumers that receive
// it from other sources.
type ExtraTimeStarted struct {
	TeamID      string `json:"team_id"`
	MatchID     string `json:"match_id"`
	Score       string `json:"score"`
	Opponent    string `json:"opponent"`
	Competition string `json:"competition"`
}

func (e ExtraTimeStarted) Team() string { return e.TeamID }
func (e ExtraTimeStarted) Kind() Kind   { return KindExtraTimeStarted }

// TeamWon fires once when a match ends with the addressed team ahead.
type TeamWon struct {
	TeamID        string `json:"team_id"`
	MatchID       string `json:"match_id"`
	FinalScore    string `json:"final_score"`
	Opponent      string `json:"opponent"`
	Competition   string `json:"competition"`
	TeamGoals     int    `json:"team_goals"`
	OpponentGoals int    `json:"opponent_goals"`
}

func (e TeamWon) Team() string { return e.TeamID }
func (e TeamWon) Kind() Kind   { return KindTeamWon }

// TeamLost fires once when a match ends with the addressed team behind.
type TeamLost struct {
	TeamID        string `json:"team_id"`
	MatchID       string `json:"match_id"`
	FinalScore    string `json:"final_score"`
	Opponent      string `json:"opponent"`
	Competition   string `json:"competition"`
	TeamGoals     int    `json:"team_goals"`
	OpponentGoals int    `json:"opponent_goals"`
}

func (e TeamLost) Team() string { return e.TeamID }
func (e TeamLost) Kind() Kind   { return KindTeamLost }

// TeamDrew fires once to both sides when a match ends level.
type TeamDrew struct {
	TeamID      string `json:"team_id"`
	MatchID     string `json:"match_id"`
	FinalScore  string `json:"final_score"`
	Opponent    string `json:"opponent"`
	Competition string `json:"competition"`
	Goals       int    `json:"goals"`
}

func (e TeamDrew) Team() string { return e.TeamID }
func (e TeamDrew) Kind() Kind   { return KindTeamDrew }

// MatchStartsSoon fires once per (match, threshold) as kickoff nears.
type MatchStartsSoon struct {
	TeamID      string    `json:"team_id"`
	MatchID     string    `json:"match_id"`
	Opponent    string    `json:"opponent"`
	KickoffTime time.Time `json:"kickoff_time"`
	Competition string    `json:"competition"`
	IsHome      bool      `json:"is_home"`
	Minutes     int       `json:"minutes"`
}

func (e MatchStartsSoon) Team() string { return e.TeamID }
func (e MatchStartsSoon) Kind() Kind   { return KindMatchStartsSoon }

// MatchFinished fires once when a match reaches a terminal status. It
// precedes the won/lost/drew result event for the same match.
type MatchFinished struct {
	TeamID  string        `json:"team_id"`
	MatchID string        `json:"match_id"`
	Status  domain.Status `json:"status"`
	Score   domain.Score  `json:"score"`
}

func (e MatchFinished) Team() string { return e.TeamID }
func (e MatchFinished) Kind() Kind   { return KindMatchFinished }

// ResultChanged fires when a side's standing (winning/losing/drawing)
// flips as a consequence of a goal.
type ResultChanged struct {
	TeamID        string             `json:"team_id"`
	MatchID       string             `json:"match_id"`
	State         domain.ResultState `json:"state"`
	Score         string             `json:"score"`
	Opponent      string             `json:"opponent"`
	Minute        int                `json:"minute"`
	TeamGoals     int                `json:"team_goals"`
	OpponentGoals int                `json:"opponent_goals"`
}

func (e ResultChanged) Team() string { return e.TeamID }
func (e ResultChanged) Kind() Kind   { return KindResultChanged }
