package stream

import (
	"encoding/json"
	"testing"

	"football-events-service/internal/events"
)

func TestHandleEventDropsWhenBufferFull(t *testing.T) {
	c := &client{
		teamID: "home",
		send:   make(chan events.Event, 2),
	}

	// Three events into a buffer of two: the third must not block.
	for i := 0; i < 3; i++ {
		c.HandleEvent(events.TeamScored{TeamID: "home", MatchID: "m1", Score: i + 1})
	}

	if len(c.send) != 2 {
		t.Fatalf("expected 2 buffered events, got %d", len(c.send))
	}
	first := (<-c.send).(events.TeamScored)
	if first.Score != 1 {
		t.Fatalf("expected oldest event kept, got score %d", first.Score)
	}
}

func TestEnvelopeEncoding(t *testing.T) {
	frame, err := json.Marshal(envelope{
		Type: events.KindMatchKickoff,
		Payload: events.MatchKickoff{
			TeamID:      "home",
			MatchID:     "m1",
			Opponent:    "Away FC",
			Competition: "Premier League",
			IsHome:      true,
		},
	})
	if err != nil {
		t.Fatalf("marshal returned %v", err)
	}

	var decoded struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(frame, &decoded); err != nil {
		t.Fatalf("unmarshal returned %v", err)
	}
	if decoded.Type != "match_kickoff" {
		t.Fatalf("type = %q", decoded.Type)
	}

	var payload map[string]any
	if err := json.Unmarshal(decoded.Payload, &payload); err != nil {
		t.Fatalf("payload decode returned %v", err)
	}
	if payload["opponent"] != "Away FC" || payload["is_home"] != true {
		t.Fatalf("unexpected payload: %v", payload)
	}
}
