package providers

import (
	"context"
	"errors"
	"testing"

	"football-events-service/internal/domain"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	err      error
	calls    int
	matches  []domain.Match
}

func (f *flakyProvider) MatchesForDate(ctx context.Context, date string, highPriority bool) ([]domain.Match, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return f.matches, nil
}

func (f *flakyProvider) MatchesForTeam(ctx context.Context, teamID, dateFrom, dateTo string, statuses []domain.Status) ([]domain.Match, error) {
	return f.MatchesForDate(ctx, dateFrom, false)
}

func (f *flakyProvider) LiveMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error) {
	return f.MatchesForDate(ctx, "", false)
}

func TestRetryRecoversFromTransientFailures(t *testing.T) {
	inner := &flakyProvider{
		failures: 2,
		err:      &TransportError{Provider: "footballdata", Err: errors.New("connection reset")},
		matches:  []domain.Match{{ID: "m1"}},
	}
	p := NewRetryingProvider(inner, nil, 3)

	matches, err := p.MatchesForDate(context.Background(), "2025-03-08", false)
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "m1" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	upstream := &UpstreamError{Provider: "footballdata", StatusCode: 503}
	inner := &flakyProvider{failures: 10, err: upstream}
	p := NewRetryingProvider(inner, nil, 2)

	_, err := p.MatchesForDate(context.Background(), "2025-03-08", false)
	if err == nil {
		t.Fatalf("expected failure after exhausting attempts")
	}
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestRetryDoesNotRepeatPermanentFailures(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ConfigurationError{Reason: "missing API key"}}
	p := NewRetryingProvider(inner, nil, 5)

	_, err := p.LiveMatchesForTeam(context.Background(), "home")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("permanent failure must not be retried, got %d calls", inner.calls)
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &TransportError{Provider: "footballdata", Err: errors.New("timeout")}}
	p := NewRetryingProvider(inner, nil, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.MatchesForTeam(ctx, "home", "2025-03-08", "2025-06-08", nil)
	if err == nil {
		t.Fatalf("expected error after cancellation")
	}
	if inner.calls > 2 {
		t.Fatalf("expected retries to stop promptly, got %d calls", inner.calls)
	}
}
