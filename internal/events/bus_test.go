package events

import "testing"

type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) HandleEvent(ev Event) {
	o.events = append(o.events, ev)
}

func TestBusPublishDeliversToSubscribedTeamOnly(t *testing.T) {
	bus := NewBus()
	home := &recordingObserver{}
	bus.Subscribe("home", home)

	delivered := bus.Publish(MatchKickoff{TeamID: "home", MatchID: "m1", Opponent: "Away FC"})
	if delivered != 1 {
		t.Fatalf("expected 1 delivery, got %d", delivered)
	}
	delivered = bus.Publish(MatchKickoff{TeamID: "away", MatchID: "m1", Opponent: "Home FC"})
	if delivered != 0 {
		t.Fatalf("expected 0 deliveries for untracked team, got %d", delivered)
	}
	if len(home.events) != 1 {
		t.Fatalf("expected observer to hold 1 event, got %d", len(home.events))
	}
}

func TestBusRefCountsObserversPerTeam(t *testing.T) {
	bus := NewBus()
	first := &recordingObserver{}
	second := &recordingObserver{}

	if teams := bus.Subscribe("home", first); teams != 1 {
		t.Fatalf("expected 1 tracked team, got %d", teams)
	}
	if teams := bus.Subscribe("home", second); teams != 1 {
		t.Fatalf("expected still 1 tracked team, got %d", teams)
	}

	if teams := bus.Unsubscribe("home", first); teams != 1 {
		t.Fatalf("team should stay tracked while one observer remains, got %d", teams)
	}
	if !bus.Tracked("home") {
		t.Fatalf("expected home still tracked")
	}

	if teams := bus.Unsubscribe("home", second); teams != 0 {
		t.Fatalf("expected 0 tracked teams, got %d", teams)
	}
	if bus.Tracked("home") {
		t.Fatalf("expected home untracked after last observer left")
	}
}

func TestBusSubscribeIsIdempotentPerObserver(t *testing.T) {
	bus := NewBus()
	obs := &recordingObserver{}
	bus.Subscribe("home", obs)
	bus.Subscribe("home", obs)

	if got := bus.Publish(TeamScored{TeamID: "home", MatchID: "m1", Score: 1}); got != 1 {
		t.Fatalf("expected single delivery to doubly-subscribed observer, got %d", got)
	}
	if teams := bus.Unsubscribe("home", obs); teams != 0 {
		t.Fatalf("expected team gone after single unsubscribe, got %d", teams)
	}
}

func TestBusFanOutToMultipleObservers(t *testing.T) {
	bus := NewBus()
	first := &recordingObserver{}
	second := &recordingObserver{}
	bus.Subscribe("home", first)
	bus.Subscribe("home", second)

	if got := bus.Publish(TeamDrew{TeamID: "home", MatchID: "m1", FinalScore: "1-1"}); got != 2 {
		t.Fatalf("expected 2 deliveries, got %d", got)
	}
	if len(first.events) != 1 || len(second.events) != 1 {
		t.Fatalf("expected both observers to receive the event")
	}
}

func TestBusTeams(t *testing.T) {
	bus := NewBus()
	bus.Subscribe("a", &recordingObserver{})
	bus.Subscribe("b", &recordingObserver{})

	teams := bus.Teams()
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if bus.TeamCount() != 2 {
		t.Fatalf("expected TeamCount 2, got %d", bus.TeamCount())
	}

	seen := map[string]bool{}
	for _, id := range teams {
		seen[id] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("unexpected team set: %v", teams)
	}
}

func TestEventKindsAndAddressing(t *testing.T) {
	cases := []struct {
		ev   Event
		kind Kind
		team string
	}{
		{TeamScored{TeamID: "t"}, KindTeamScored, "t"},
		{TeamConceded{TeamID: "t"}, KindTeamConceded, "t"},
		{MatchKickoff{TeamID: "t"}, KindMatchKickoff, "t"},
		{HalftimeStarted{TeamID: "t"}, KindHalftimeStarted, "t"},
		{SecondHalfStarted{TeamID: "t"}, KindSecondHalfStarted, "t"},
		{ExtraTimeStarted{TeamID: "t"}, KindExtraTimeStarted, "t"},
		{TeamWon{TeamID: "t"}, KindTeamWon, "t"},
		{TeamLost{TeamID: "t"}, KindTeamLost, "t"},
		{TeamDrew{TeamID: "t"}, KindTeamDrew, "t"},
		{MatchStartsSoon{TeamID: "t"}, KindMatchStartsSoon, "t"},
		{MatchFinished{TeamID: "t"}, KindMatchFinished, "t"},
		{ResultChanged{TeamID: "t"}, KindResultChanged, "t"},
	}
	for _, tc := range cases {
		if tc.ev.Kind() != tc.kind {
			t.Errorf("Kind() = %s, want %s", tc.ev.Kind(), tc.kind)
		}
		if tc.ev.Team() != tc.team {
			t.Errorf("Team() = %s, want %s", tc.ev.Team(), tc.team)
		}
	}
}
