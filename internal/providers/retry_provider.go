package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"football-events-service/internal/domain"
)

const (
	defaultRetryAttempts    = 3
	defaultInitialInterval  = 200 * time.Millisecond
	defaultMaxRetryInterval = 5 * time.Second
)

// retryingProvider wraps a MatchProvider with exponential backoff on
// transient failures. Permanent failures (configuration, auth) are
// surfaced immediately.
type retryingProvider struct {
	inner       MatchProvider
	logger      *slog.Logger
	maxAttempts uint64
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts <= 0 a default is used.
func NewRetryingProvider(inner MatchProvider, logger *slog.Logger, maxAttempts int) MatchProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: uint64(maxAttempts),
	}
}

func (r *retryingProvider) MatchesForDate(ctx context.Context, date string, highPriority bool) ([]domain.Match, error) {
	return r.retry(ctx, "matches_for_date", func() ([]domain.Match, error) {
		return r.inner.MatchesForDate(ctx, date, highPriority)
	})
}

func (r *retryingProvider) MatchesForTeam(ctx context.Context, teamID, dateFrom, dateTo string, statuses []domain.Status) ([]domain.Match, error) {
	return r.retry(ctx, "matches_for_team", func() ([]domain.Match, error) {
		return r.inner.MatchesForTeam(ctx, teamID, dateFrom, dateTo, statuses)
	})
}

func (r *retryingProvider) LiveMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error) {
	return r.retry(ctx, "live_matches_for_team", func() ([]domain.Match, error) {
		return r.inner.LiveMatchesForTeam(ctx, teamID)
	})
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() ([]domain.Match, error)) ([]domain.Match, error) {
	var matches []domain.Match
	attempt := 0

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = defaultInitialInterval
	policy.MaxInterval = defaultMaxRetryInterval

	err := backoff.Retry(func() error {
		attempt++
		var callErr error
		matches, callErr = fn()
		if callErr == nil {
			return nil
		}
		if !IsRetryable(callErr) {
			return backoff.Permanent(callErr)
		}
		r.logWarn("provider fetch retry", "operation", op, "attempt", attempt, "err", callErr)
		return callErr
	}, backoff.WithContext(backoff.WithMaxRetries(policy, r.maxAttempts-1), ctx))

	if err != nil {
		r.logWarn("provider fetch failed", "operation", op, "attempts", attempt, "err", err)
		return nil, err
	}
	return matches, nil
}

func (r *retryingProvider) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
