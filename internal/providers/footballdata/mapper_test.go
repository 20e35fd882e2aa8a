package footballdata

import (
	"testing"
	"time"

	"football-events-service/internal/domain"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Status
	}{
		{"SCHEDULED", domain.StatusScheduled},
		{"TIMED", domain.StatusTimed},
		{"IN_PLAY", domain.StatusInPlay},
		{"LIVE", domain.StatusInPlay},
		{"PAUSED", domain.StatusPaused},
		{"FINISHED", domain.StatusFinished},
		{"SUSPENDED", domain.StatusSuspended},
		{"POSTPONED", domain.StatusPostponed},
		{"CANCELLED", domain.StatusCancelled},
		{"AWARDED", domain.StatusAwarded},
		{"SOMETHING_NEW", domain.StatusScheduled},
	}
	for _, tc := range cases {
		if got := mapStatus(tc.raw); got != tc.want {
			t.Errorf("mapStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestMapScoreNilsAreZero(t *testing.T) {
	if got := mapScore(scorePairing{}); got != (domain.Score{}) {
		t.Fatalf("nil score = %+v, want zero", got)
	}
	two, one := 2, 1
	if got := mapScore(scorePairing{Home: &two, Away: &one}); got != (domain.Score{Home: 2, Away: 1}) {
		t.Fatalf("score = %+v", got)
	}
}

func TestMapTeamShortNameFallsBackToTLA(t *testing.T) {
	team := mapTeam(teamResponse{ID: 57, Name: "Arsenal FC", TLA: "ARS"})
	if team.ShortName != "ARS" {
		t.Fatalf("ShortName = %q, want TLA fallback", team.ShortName)
	}

	team = mapTeam(teamResponse{ID: 57, Name: "Arsenal FC", ShortName: "Arsenal", TLA: "ARS"})
	if team.ShortName != "Arsenal" {
		t.Fatalf("ShortName = %q, want Arsenal", team.ShortName)
	}
}

func TestMapMatchBadDateYieldsZeroKickoff(t *testing.T) {
	m := mapMatch(matchResponse{ID: 1, UTCDate: "not-a-date", Status: "TIMED"})
	if !m.Kickoff.IsZero() {
		t.Fatalf("expected zero kickoff for unparseable date, got %v", m.Kickoff)
	}
	if m.ID != "1" {
		t.Fatalf("ID = %q", m.ID)
	}
}

func TestMapMatchKickoffIsUTC(t *testing.T) {
	m := mapMatch(matchResponse{ID: 1, UTCDate: "2025-03-08T15:00:00+01:00", Status: "TIMED"})
	want := time.Date(2025, 3, 8, 14, 0, 0, 0, time.UTC)
	if !m.Kickoff.Equal(want) || m.Kickoff.Location() != time.UTC {
		t.Fatalf("kickoff = %v, want %v in UTC", m.Kickoff, want)
	}
}
