package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"football-events-service/internal/domain"
	"football-events-service/internal/events"
)

// StubProvider is a test double for providers.MatchProvider.
type StubProvider struct {
	Matches     []domain.Match
	TeamMatches []domain.Match
	Err         error
	Calls       atomic.Int32
	TeamCalls   atomic.Int32
	HighPrio    atomic.Int32
	Notify      chan struct{}
}

// MatchesForDate returns the configured matches and error while
// tracking calls and the high-priority flag.
func (s *StubProvider) MatchesForDate(ctx context.Context, date string, highPriority bool) ([]domain.Match, error) {
	_ = ctx
	_ = date
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if highPriority {
		s.HighPrio.Add(1)
	}
	return s.Matches, s.Err
}

// MatchesForTeam returns the configured team matches and error.
func (s *StubProvider) MatchesForTeam(ctx context.Context, teamID, dateFrom, dateTo string, statuses []domain.Status) ([]domain.Match, error) {
	_ = ctx
	_ = teamID
	_ = dateFrom
	_ = dateTo
	_ = statuses
	s.TeamCalls.Add(1)
	return s.TeamMatches, s.Err
}

// LiveMatchesForTeam returns the configured team matches and error.
func (s *StubProvider) LiveMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error) {
	_ = ctx
	_ = teamID
	return s.TeamMatches, s.Err
}

// RecordingObserver collects every event it receives.
type RecordingObserver struct {
	mu     sync.Mutex
	Events []events.Event
}

func (o *RecordingObserver) HandleEvent(ev events.Event) {
	o.mu.Lock()
	o.Events = append(o.Events, ev)
	o.mu.Unlock()
}

// Received returns a copy of the collected events.
func (o *RecordingObserver) Received() []events.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]events.Event, len(o.Events))
	copy(out, o.Events)
	return out
}

// Kinds returns the kinds of the collected events in order.
func (o *RecordingObserver) Kinds() []events.Kind {
	o.mu.Lock()
	defer o.mu.Unlock()
	kinds := make([]events.Kind, 0, len(o.Events))
	for _, ev := range o.Events {
		kinds = append(kinds, ev.Kind())
	}
	return kinds
}
