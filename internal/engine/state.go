package engine

import (
	"time"

	"football-events-service/internal/domain"
)

// State is the scheduler's coarse mode; it determines the delay before
// the next polling cycle and nothing else.
type State string

const (
	StateIdle      State = "IDLE"
	StatePreMatch  State = "PRE_MATCH"
	StateLive      State = "LIVE"
	StatePaused    State = "PAUSED"
	StatePostMatch State = "POST_MATCH"
)

const (
	delayIdle      = 15 * time.Minute
	delayPreMatch  = 5 * time.Minute
	delayLive      = 30 * time.Second
	delayPaused    = 2 * time.Minute
	delayPostMatch = 5 * time.Minute

	// Applied after a failed cycle regardless of state.
	retryDelay = time.Minute

	// Window ahead of kickoff that counts as PRE_MATCH.
	preMatchWindow = 2 * time.Hour
	// The data source can lag reality by minutes around kickoff: a match
	// still reported as upcoming with a kickoff up to this far in the
	// past is treated as live.
	delayedKickoffWindow = 2 * time.Hour
	// Assumed match length used for POST_MATCH and cache eviction.
	estimatedDuration = 2 * time.Hour
	// How long after the estimated end a finished match keeps the
	// scheduler in POST_MATCH.
	postMatchWindow = 15 * time.Minute
	// Grace period past the estimated end before a terminal match's
	// cache entry is evicted.
	evictionGrace = 30 * time.Minute
)

// Delay returns the re-poll delay for the state.
func (s State) Delay() time.Duration {
	switch s {
	case StateLive:
		return delayLive
	case StatePaused:
		return delayPaused
	case StatePreMatch:
		return delayPreMatch
	case StatePostMatch:
		return delayPostMatch
	default:
		return delayIdle
	}
}

// Classify buckets the relevant matches by urgency and returns the
// highest-priority non-empty bucket: LIVE > PAUSED > POST_MATCH >
// PRE_MATCH > IDLE.
func Classify(matches []domain.Match, now time.Time) State {
	var paused, postMatch, preMatch bool

	for _, m := range matches {
		switch {
		case m.Status.Live():
			return StateLive
		case m.Status.Upcoming():
			sinceKickoff := now.Sub(m.Kickoff)
			if sinceKickoff >= 0 && sinceKickoff <= delayedKickoffWindow {
				return StateLive
			}
			untilKickoff := m.Kickoff.Sub(now)
			if untilKickoff > 0 && untilKickoff <= preMatchWindow {
				preMatch = true
			}
		case m.Status == domain.StatusPaused:
			paused = true
		case m.Status.Terminal():
			end := m.Kickoff.Add(estimatedDuration)
			if !end.After(now) && now.Sub(end) <= postMatchWindow {
				postMatch = true
			}
		}
	}

	switch {
	case paused:
		return StatePaused
	case postMatch:
		return StatePostMatch
	case preMatch:
		return StatePreMatch
	}
	return StateIdle
}
