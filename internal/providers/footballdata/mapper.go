package footballdata

import (
	"strconv"
	"time"

	"football-events-service/internal/domain"
)

func mapMatch(m matchResponse) domain.Match {
	kickoff, err := time.Parse(time.RFC3339, m.UTCDate)
	if err != nil {
		kickoff = time.Time{}
	}
	return domain.Match{
		ID:            strconv.Itoa(m.ID),
		Status:        mapStatus(m.Status),
		Kickoff:       kickoff.UTC(),
		Competition:   m.Competition.Name,
		HomeTeam:      mapTeam(m.HomeTeam),
		AwayTeam:      mapTeam(m.AwayTeam),
		Score:         mapScore(m.Score.FullTime),
		HalfTimeScore: mapScore(m.Score.HalfTime),
		Minute:        m.Minute,
	}
}

func mapTeam(t teamResponse) domain.Team {
	short := t.ShortName
	if short == "" {
		short = t.TLA
	}
	return domain.Team{
		ID:        strconv.Itoa(t.ID),
		Name:      t.Name,
		ShortName: short,
	}
}

// mapScore treats missing upstream values as zero; scores are only
// meaningful once a match is under way.
func mapScore(p scorePairing) domain.Score {
	var s domain.Score
	if p.Home != nil {
		s.Home = *p.Home
	}
	if p.Away != nil {
		s.Away = *p.Away
	}
	return s
}

func mapStatus(status string) domain.Status {
	switch status {
	case "SCHEDULED":
		return domain.StatusScheduled
	case "TIMED":
		return domain.StatusTimed
	case "IN_PLAY", "LIVE":
		return domain.StatusInPlay
	case "PAUSED":
		return domain.StatusPaused
	case "FINISHED":
		return domain.StatusFinished
	case "SUSPENDED":
		return domain.StatusSuspended
	case "POSTPONED":
		return domain.StatusPostponed
	case "CANCELLED":
		return domain.StatusCancelled
	case "AWARDED":
		return domain.StatusAwarded
	default:
		return domain.StatusScheduled
	}
}
