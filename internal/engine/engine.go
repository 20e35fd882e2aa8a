package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"football-events-service/internal/domain"
	"football-events-service/internal/events"
	"football-events-service/internal/logging"
	"football-events-service/internal/metrics"
	"football-events-service/internal/providers"
	"football-events-service/internal/timeutil"
)

// Look-ahead horizon for next-match lookups.
const nextMatchHorizon = 90 * 24 * time.Hour

// Config wires an Engine's collaborators.
type Config struct {
	// Provider serves the batched poll-cycle fetches.
	Provider providers.MatchProvider
	// Lookup serves one-off next-match queries; defaults to Provider.
	// Wrapping it with retries is the caller's choice.
	Lookup  providers.MatchProvider
	Bus     *events.Bus
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Engine is the adaptive polling scheduler. It owns the snapshot cache,
// classifies the tracked matches into an urgency state each cycle and
// re-arms itself with that state's delay. Exactly one cycle runs at a
// time; the loop is the cache's only writer.
type Engine struct {
	provider providers.MatchProvider
	lookup   providers.MatchProvider
	bus      *events.Bus
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
	cache    *snapshotCache

	done     chan struct{}
	kick     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	state    State
	status   Status
}

// Status describes the recent health of the polling loop.
type Status struct {
	State               State
	TrackedTeams        int
	CachedMatches       int
	ConsecutiveFailures int
	LastError           string
	LastCycle           time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop is running and not failing repeatedly.
func (s Status) IsReady() bool {
	return s.ConsecutiveFailures < 3
}

// New constructs an Engine. Bus is required; a nil Lookup falls back to
// Provider.
func New(cfg Config) *Engine {
	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}
	lookup := cfg.Lookup
	if lookup == nil {
		lookup = cfg.Provider
	}
	return &Engine{
		provider: cfg.Provider,
		lookup:   lookup,
		bus:      bus,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
		cache:    newSnapshotCache(),
		done:     make(chan struct{}),
		kick:     make(chan struct{}, 1),
		state:    StateIdle,
	}
}

// Bus exposes the event bus, primarily for direct subscriptions.
func (e *Engine) Bus() *events.Bus { return e.bus }

// Start launches the polling loop. The first cycle runs immediately.
// Starting twice is a no-op.
func (e *Engine) Start(ctx context.Context) {
	e.startMu.Lock()
	if e.started {
		e.startMu.Unlock()
		return
	}
	e.started = true
	e.startMu.Unlock()

	go e.run(ctx)
}

// Stop halts the polling loop. Safe to call more than once.
func (e *Engine) Stop(ctx context.Context) error {
	_ = ctx
	e.stopOnce.Do(func() {
		close(e.done)
	})
	return nil
}

// Register subscribes an observer to a team's events. Tracking the
// first team triggers an immediate cycle so the subscriber does not
// wait out an idle delay.
func (e *Engine) Register(teamID string, obs events.Observer) {
	teams := e.bus.Subscribe(teamID, obs)
	logging.Info(e.logger, "observer registered",
		slog.String(logging.FieldTeam, teamID), slog.Int("tracked_teams", teams))
	if teams == 1 {
		e.requestCycle()
	}
}

// Unregister removes an observer. When the last observer of the last
// team leaves, the loop parks: the next cycle skips the fetch and waits
// at the idle delay, so an in-flight cycle completes harmlessly.
func (e *Engine) Unregister(teamID string, obs events.Observer) {
	teams := e.bus.Unsubscribe(teamID, obs)
	logging.Info(e.logger, "observer unregistered",
		slog.String(logging.FieldTeam, teamID), slog.Int("tracked_teams", teams))
}

// requestCycle wakes the loop for an immediate cycle.
func (e *Engine) requestCycle() {
	select {
	case e.kick <- struct{}{}:
	default:
	}
}

// run is the scheduling loop: one cycle, then a single-shot timer armed
// with the cycle's resulting delay. Re-arming happens exactly once per
// completed cycle, so fetches never overlap.
func (e *Engine) run(ctx context.Context) {
	logging.Info(e.logger, "polling engine started")
	for {
		delay := e.runCycle(ctx)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			logging.Info(e.logger, "polling engine stopped")
			return
		case <-e.done:
			timer.Stop()
			logging.Info(e.logger, "polling engine stopped")
			return
		case <-e.kick:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// runCycle executes one fetch-diff-emit pass and returns the delay
// until the next cycle. Failures leave the cache and state untouched
// and shorten the delay to the retry interval.
func (e *Engine) runCycle(ctx context.Context) time.Duration {
	start := e.now()
	e.recordAttempt(start)

	if e.bus.TeamCount() == 0 {
		return delayIdle
	}

	date := timeutil.FormatDate(start.UTC())
	// LIVE polls may use the reserved quota slice so they are not
	// starved by background lookups.
	highPriority := e.State() == StateLive

	matches, err := e.provider.MatchesForDate(ctx, date, highPriority)
	if err != nil {
		e.metrics.RecordCycle(string(e.State()), e.now().Sub(start), err)
		logging.Error(e.logger, "poll cycle failed", err,
			slog.String(logging.FieldDate, date),
			slog.Int64(logging.FieldDurationMS, e.now().Sub(start).Milliseconds()))
		e.recordFailure(err, start)
		return retryDelay
	}

	relevant := e.filterTracked(matches)
	for _, m := range relevant {
		e.processMatch(m)
	}
	e.announceUpcoming(relevant)
	e.evictStale(relevant)

	next := Classify(relevant, e.now())
	e.transition(next)
	e.recordSuccess(start)
	e.metrics.RecordCycle(string(next), e.now().Sub(start), nil)
	logging.Info(e.logger, "poll cycle complete",
		slog.Int(logging.FieldCount, len(relevant)),
		slog.String(logging.FieldState, string(next)),
		slog.Int64(logging.FieldDurationMS, e.now().Sub(start).Milliseconds()))

	return next.Delay()
}

// filterTracked keeps matches that touch at least one tracked team.
func (e *Engine) filterTracked(matches []domain.Match) []domain.Match {
	relevant := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if e.bus.Tracked(m.HomeTeam.ID) || e.bus.Tracked(m.AwayTeam.ID) {
			relevant = append(relevant, m)
		}
	}
	return relevant
}

// processMatch diffs one match against its snapshot, publishes the
// resulting events and commits the fresh snapshot. Emission and commit
// happen together per match: a failure before emission leaves the
// cache entry untouched, and latched markers make re-diffing after a
// partial cycle produce no duplicates.
func (e *Engine) processMatch(m domain.Match) {
	prev := e.cache.get(m.ID)
	evs, markers := detectEvents(prev, m)
	for _, ev := range evs {
		e.publish(ev)
	}

	snap := Snapshot{Match: m, Markers: markers}
	if prev != nil {
		snap.FiredThresholds = prev.FiredThresholds
	}
	e.cache.commit(snap)
}

// announceUpcoming runs the starts-soon threshold check over all
// upcoming relevant matches.
func (e *Engine) announceUpcoming(relevant []domain.Match) {
	now := e.now()
	for _, m := range relevant {
		snap := e.cache.get(m.ID)
		if snap == nil {
			continue
		}
		evs, fired := startsSoonEvents(snap.Match, snap.FiredThresholds, now)
		for _, ev := range evs {
			e.publish(ev)
		}
		e.cache.markThresholds(m.ID, fired)
	}
}

func (e *Engine) evictStale(relevant []domain.Match) {
	present := make(map[string]struct{}, len(relevant))
	for _, m := range relevant {
		present[m.ID] = struct{}{}
	}
	e.cache.evict(e.now(), present)
}

func (e *Engine) publish(ev events.Event) {
	delivered := e.bus.Publish(ev)
	e.metrics.RecordEventPublished(string(ev.Kind()), delivered)
	if delivered > 0 && e.logger != nil {
		e.logger.Debug("event published",
			slog.String(logging.FieldEvent, string(ev.Kind())),
			slog.String(logging.FieldTeam, ev.Team()),
			slog.Int(logging.FieldCount, delivered))
	}
}

// transition updates the stored state, logging only on change.
func (e *Engine) transition(next State) {
	e.statusMu.Lock()
	prev := e.state
	e.state = next
	e.statusMu.Unlock()
	if prev != next {
		logging.Info(e.logger, "scheduler state changed",
			slog.String("from", string(prev)), slog.String("to", string(next)))
	}
}

// State returns the scheduler's current urgency state.
func (e *Engine) State() State {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	return e.state
}

// Status returns a snapshot of the loop's recent health.
func (e *Engine) Status() Status {
	e.statusMu.RLock()
	status := e.status
	status.State = e.state
	e.statusMu.RUnlock()
	status.TrackedTeams = e.bus.TeamCount()
	status.CachedMatches = e.cache.len()
	return status
}

func (e *Engine) recordAttempt(at time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.LastCycle = at
}

func (e *Engine) recordSuccess(at time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.ConsecutiveFailures = 0
	e.status.LastError = ""
	e.status.LastSuccess = at
}

func (e *Engine) recordFailure(err error, at time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.ConsecutiveFailures++
	if err != nil {
		e.status.LastError = err.Error()
	}
	e.status.LastCycle = at
}
