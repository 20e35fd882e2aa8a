package footballdata

import (
	"context"
	"time"
)

// limiter enforces a sliding-window request quota shared by all calls
// through one client. Regular callers see quota-reserve slots; a
// high-priority caller may use the full quota. A slot is claimed before
// the request is sent, so capacity stays reserved even when the call
// later fails.
type limiter struct {
	quota   int
	reserve int
	window  time.Duration
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error

	// Guarded by the acquire loop being the only writer path; a channel
	// semaphore keeps mutation single-threaded under concurrent callers.
	sem    chan struct{}
	stamps []time.Time
}

func newLimiter(quota, reserve int, window time.Duration) *limiter {
	l := &limiter{
		quota:   quota,
		reserve: reserve,
		window:  window,
		now:     time.Now,
		sleep:   sleepContext,
		sem:     make(chan struct{}, 1),
	}
	l.sem <- struct{}{}
	return l
}

// acquire blocks until a request slot is free, then claims it. The wait
// is a loop: after waking it re-checks the window, since other entries
// may still be inside it. Cancelling the context aborts the wait.
func (l *limiter) acquire(ctx context.Context, highPriority bool) (waited time.Duration, err error) {
	limit := l.quota
	if !highPriority {
		limit -= l.reserve
	}

	start := l.now()
	for {
		select {
		case <-ctx.Done():
			return l.now().Sub(start), ctx.Err()
		case token := <-l.sem:
			now := l.now()
			l.prune(now)
			if len(l.stamps) < limit {
				l.stamps = append(l.stamps, now)
				l.sem <- token
				return now.Sub(start), nil
			}
			wait := l.stamps[0].Add(l.window).Sub(now) + limiterSafetyMargin
			l.sem <- token
			if err := l.sleep(ctx, wait); err != nil {
				return l.now().Sub(start), err
			}
		}
	}
}

// inWindow returns the number of timestamps inside the trailing window.
func (l *limiter) inWindow() int {
	token := <-l.sem
	l.prune(l.now())
	n := len(l.stamps)
	l.sem <- token
	return n
}

func (l *limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	idx := 0
	for idx < len(l.stamps) && !l.stamps[idx].After(cutoff) {
		idx++
	}
	if idx > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[idx:]...)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
