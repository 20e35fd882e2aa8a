package domain

import (
	"testing"
	"time"
)

func TestStatusHelpers(t *testing.T) {
	cases := []struct {
		status   Status
		upcoming bool
		live     bool
		terminal bool
	}{
		{StatusScheduled, true, false, false},
		{StatusTimed, true, false, false},
		{StatusInPlay, false, true, false},
		{StatusPaused, false, false, false},
		{StatusFinished, false, false, true},
		{StatusAwarded, false, false, true},
		{StatusSuspended, false, false, false},
		{StatusPostponed, false, false, false},
		{StatusCancelled, false, false, false},
	}

	for _, tc := range cases {
		if got := tc.status.Upcoming(); got != tc.upcoming {
			t.Errorf("%s.Upcoming() = %v, want %v", tc.status, got, tc.upcoming)
		}
		if got := tc.status.Live(); got != tc.live {
			t.Errorf("%s.Live() = %v, want %v", tc.status, got, tc.live)
		}
		if got := tc.status.Terminal(); got != tc.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", tc.status, got, tc.terminal)
		}
	}
}

func testMatch() Match {
	return Match{
		ID:          "m1",
		Status:      StatusInPlay,
		Kickoff:     time.Date(2025, 3, 8, 15, 0, 0, 0, time.UTC),
		Competition: "Premier League",
		HomeTeam:    Team{ID: "home", Name: "Home FC"},
		AwayTeam:    Team{ID: "away", Name: "Away FC"},
		Score:       Score{Home: 2, Away: 1},
	}
}

func TestMatchSides(t *testing.T) {
	m := testMatch()

	if !m.Involves("home") || !m.Involves("away") {
		t.Fatalf("expected both sides involved")
	}
	if m.Involves("other") {
		t.Fatalf("unexpected involvement for unrelated team")
	}
	if !m.IsHome("home") || m.IsHome("away") {
		t.Fatalf("IsHome mismatch")
	}
	if got := m.Opponent("home"); got.ID != "away" {
		t.Fatalf("Opponent(home) = %q, want away", got.ID)
	}
	if got := m.Opponent("away"); got.ID != "home" {
		t.Fatalf("Opponent(away) = %q, want home", got.ID)
	}
	if got := m.Opponent("other"); got != (Team{}) {
		t.Fatalf("Opponent(other) = %+v, want zero team", got)
	}
}

func TestGoalsFor(t *testing.T) {
	m := testMatch()

	own, opp := m.GoalsFor("home")
	if own != 2 || opp != 1 {
		t.Fatalf("GoalsFor(home) = %d,%d, want 2,1", own, opp)
	}
	own, opp = m.GoalsFor("away")
	if own != 1 || opp != 2 {
		t.Fatalf("GoalsFor(away) = %d,%d, want 1,2", own, opp)
	}
}

func TestResultFromGoals(t *testing.T) {
	cases := []struct {
		own, opp int
		want     ResultState
	}{
		{2, 1, ResultWinning},
		{0, 1, ResultLosing},
		{1, 1, ResultDrawing},
		{0, 0, ResultDrawing},
	}
	for _, tc := range cases {
		if got := ResultFromGoals(tc.own, tc.opp); got != tc.want {
			t.Errorf("ResultFromGoals(%d,%d) = %s, want %s", tc.own, tc.opp, got, tc.want)
		}
	}
}

func TestResultFor(t *testing.T) {
	m := testMatch()
	if got := m.ResultFor("home"); got != ResultWinning {
		t.Fatalf("ResultFor(home) = %s, want winning", got)
	}
	if got := m.ResultFor("away"); got != ResultLosing {
		t.Fatalf("ResultFor(away) = %s, want losing", got)
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(Score{Home: 3, Away: 2}); got != "3-2" {
		t.Fatalf("FormatScore = %q, want 3-2", got)
	}
}
