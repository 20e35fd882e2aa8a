package engine

import (
	"sort"
	"time"

	"football-events-service/internal/domain"
	"football-events-service/internal/events"
	"football-events-service/internal/timeutil"
)

// startsSoonThresholds are the minutes-before-kickoff marks announced
// for upcoming matches, in descending order.
var startsSoonThresholds = []int{120, 60, 30, 15}

// detectEvents compares a freshly fetched match against its cached
// snapshot and returns the events to emit plus the updated marker set.
// It is a pure function: the cache is not touched.
func detectEvents(prev *Snapshot, cur domain.Match) ([]events.Event, Markers) {
	if prev == nil {
		return catchUpEvents(cur)
	}

	m := prev.Markers
	var evs []events.Event

	if prev.Match.Status != cur.Status {
		switch {
		case cur.Status == domain.StatusInPlay:
			if prev.Match.Status.Upcoming() && !m.Kickoff {
				evs = append(evs, kickoffEvents(cur)...)
				m.Kickoff = true
			}
			if prev.Match.Status == domain.StatusPaused && !m.SecondHalf {
				evs = append(evs, secondHalfEvents(cur)...)
				m.SecondHalf = true
			}
		case cur.Status == domain.StatusPaused:
			if !m.Halftime {
				evs = append(evs, halftimeEvents(cur)...)
				m.Halftime = true
			}
		case cur.Status.Terminal():
			if !m.Finished {
				evs = append(evs, finishedEvents(cur)...)
				m.Finished = true
			}
		}
	}

	if cur.Status == domain.StatusInPlay || cur.Status == domain.StatusPaused {
		evs = append(evs, scoreEvents(prev.Match, cur)...)
	}

	return evs, m
}

// catchUpEvents handles a match observed for the first time. A match
// already under way or finished was missed at its earlier stages, so
// the events for the observed stage are emitted as if the transition
// had just happened, and all earlier latches are set.
func catchUpEvents(cur domain.Match) ([]events.Event, Markers) {
	var m Markers
	var evs []events.Event

	switch {
	case cur.Status == domain.StatusInPlay:
		evs = kickoffEvents(cur)
		m.Kickoff = true
	case cur.Status == domain.StatusPaused:
		evs = append(kickoffEvents(cur), halftimeEvents(cur)...)
		m.Kickoff = true
		m.Halftime = true
	case cur.Status.Terminal():
		evs = finishedEvents(cur)
		m = Markers{Kickoff: true, Halftime: true, SecondHalf: true, Finished: true}
	}

	return evs, m
}

// startsSoonEvents returns the starts-soon announcements due for an
// upcoming match and the thresholds that fired. A (match, threshold)
// pair fires at most once; the caller latches the returned thresholds.
func startsSoonEvents(cur domain.Match, fired map[int]bool, now time.Time) ([]events.Event, []int) {
	if !cur.Status.Upcoming() {
		return nil, nil
	}

	mins := timeutil.MinutesUntil(now, cur.Kickoff)
	if mins <= 0 {
		return nil, nil
	}

	var evs []events.Event
	var newlyFired []int
	for _, threshold := range startsSoonThresholds {
		if mins > threshold || fired[threshold] {
			continue
		}
		evs = append(evs, forEachSide(cur, func(side, opp domain.Team, isHome bool) events.Event {
			return events.MatchStartsSoon{
				TeamID:      side.ID,
				MatchID:     cur.ID,
				Opponent:    opp.Name,
				KickoffTime: cur.Kickoff,
				Competition: cur.Competition,
				IsHome:      isHome,
				Minutes:     threshold,
			}
		})...)
		newlyFired = append(newlyFired, threshold)
	}
	return evs, newlyFired
}

func kickoffEvents(cur domain.Match) []events.Event {
	return forEachSide(cur, func(side, opp domain.Team, isHome bool) events.Event {
		return events.MatchKickoff{
			TeamID:      side.ID,
			MatchID:     cur.ID,
			Opponent:    opp.Name,
			Competition: cur.Competition,
			IsHome:      isHome,
		}
	})
}

func halftimeEvents(cur domain.Match) []events.Event {
	ht := cur.HalfTimeScore
	if ht == (domain.Score{}) {
		ht = cur.Score
	}
	return forEachSide(cur, func(side, opp domain.Team, isHome bool) events.Event {
		return events.HalftimeStarted{
			TeamID:        side.ID,
			MatchID:       cur.ID,
			HalftimeScore: domain.FormatScore(ht),
			Opponent:      opp.Name,
			HomeScore:     cur.Score.Home,
			AwayScore:     cur.Score.Away,
		}
	})
}

func secondHalfEvents(cur domain.Match) []events.Event {
	return forEachSide(cur, func(side, opp domain.Team, isHome bool) events.Event {
		return events.SecondHalfStarted{
			TeamID:   side.ID,
			MatchID:  cur.ID,
			Score:    domain.FormatScore(cur.Score),
			Opponent: opp.Name,
		}
	})
}

// finishedEvents emits the terminal notification followed by exactly
// one result event per side: won/lost to the opposing sides, or drew to
// both.
func finishedEvents(cur domain.Match) []events.Event {
	evs := forEachSide(cur, func(side, opp domain.Team, isHome bool) events.Event {
		return events.MatchFinished{
			TeamID:  side.ID,
			MatchID: cur.ID,
			Status:  cur.Status,
			Score:   cur.Score,
		}
	})

	final := domain.FormatScore(cur.Score)
	evs = append(evs, forEachSide(cur, func(side, opp domain.Team, isHome bool) events.Event {
		own, against := cur.GoalsFor(side.ID)
		switch domain.ResultFromGoals(own, against) {
		case domain.ResultWinning:
			return events.TeamWon{
				TeamID: side.ID, MatchID: cur.ID, FinalScore: final,
				Opponent: opp.Name, Competition: cur.Competition,
				TeamGoals: own, OpponentGoals: against,
			}
		case domain.ResultLosing:
			return events.TeamLost{
				TeamID: side.ID, MatchID: cur.ID, FinalScore: final,
				Opponent: opp.Name, Competition: cur.Competition,
				TeamGoals: own, OpponentGoals: against,
			}
		default:
			return events.TeamDrew{
				TeamID: side.ID, MatchID: cur.ID, FinalScore: final,
				Opponent: opp.Name, Competition: cur.Competition,
				Goals: own,
			}
		}
	})...)
	return evs
}

// scoreEvents emits scored/conceded pairs for each side whose goal
// count strictly increased, then result-changed for each side whose
// winning/losing/drawing standing flipped.
func scoreEvents(prev, cur domain.Match) []events.Event {
	var evs []events.Event

	if cur.Score.Home > prev.Score.Home {
		evs = append(evs, goalPair(cur, cur.HomeTeam, cur.AwayTeam, cur.Score.Home)...)
	}
	if cur.Score.Away > prev.Score.Away {
		evs = append(evs, goalPair(cur, cur.AwayTeam, cur.HomeTeam, cur.Score.Away)...)
	}
	if len(evs) == 0 {
		return nil
	}

	evs = append(evs, resultChangeEvents(prev, cur)...)
	return evs
}

// goalPair addresses the scorer and the conceder separately so each
// tracked side sees its own perspective.
func goalPair(cur domain.Match, scorer, conceder domain.Team, newCount int) []events.Event {
	return []events.Event{
		events.TeamScored{
			TeamID:    scorer.ID,
			MatchID:   cur.ID,
			Score:     newCount,
			Minute:    cur.Minute,
			Opponent:  conceder.Name,
			HomeScore: cur.Score.Home,
			AwayScore: cur.Score.Away,
		},
		events.TeamConceded{
			TeamID:      conceder.ID,
			MatchID:     cur.ID,
			Score:       newCount,
			Minute:      cur.Minute,
			ScoringTeam: scorer.Name,
			HomeScore:   cur.Score.Home,
			AwayScore:   cur.Score.Away,
		},
	}
}

func resultChangeEvents(prev, cur domain.Match) []events.Event {
	var evs []events.Event
	for _, side := range []domain.Team{cur.HomeTeam, cur.AwayTeam} {
		prevOwn, prevOpp := prev.GoalsFor(side.ID)
		curOwn, curOpp := cur.GoalsFor(side.ID)
		before := domain.ResultFromGoals(prevOwn, prevOpp)
		after := domain.ResultFromGoals(curOwn, curOpp)
		if before == after {
			continue
		}
		evs = append(evs, events.ResultChanged{
			TeamID:        side.ID,
			MatchID:       cur.ID,
			State:         after,
			Score:         domain.FormatScore(cur.Score),
			Opponent:      cur.Opponent(side.ID).Name,
			Minute:        cur.Minute,
			TeamGoals:     curOwn,
			OpponentGoals: curOpp,
		})
	}
	return evs
}

func forEachSide(cur domain.Match, build func(side, opp domain.Team, isHome bool) events.Event) []events.Event {
	return []events.Event{
		build(cur.HomeTeam, cur.AwayTeam, true),
		build(cur.AwayTeam, cur.HomeTeam, false),
	}
}

// sortByKickoff orders matches ascending by kickoff instant.
func sortByKickoff(matches []domain.Match) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Kickoff.Before(matches[j].Kickoff)
	})
}
