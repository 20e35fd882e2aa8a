package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastWait        time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider
// calls, poll cycles and event delivery. It is intentionally simple so
// it can be swapped for a real backend later.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	cycles int
	events map[string]int
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*providerStats),
		events: make(map[string]int),
		otel:   otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimitHit tracks an upstream 429 despite client throttling.
func (r *Recorder) RecordRateLimitHit(provider string) {
	if r == nil {
		return
	}
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if r.otel != nil {
		r.otel.recordRateLimitHit(provider)
	}
}

// RecordRateLimitWait tracks time spent blocked in the client-side limiter.
func (r *Recorder) RecordRateLimitWait(provider string, wait time.Duration) {
	if r == nil {
		return
	}
	stats := r.ensureStats(provider)
	if wait > 0 {
		stats.lastWait = wait
	}
	if r.otel != nil {
		r.otel.recordRateLimitWait(provider, wait)
	}
}

// RecordCycle tracks one polling cycle, its resulting state and outcome.
func (r *Recorder) RecordCycle(state string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cycles++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCycle(state, duration, err)
	}
}

// RecordEventPublished tracks an event published on the bus and how
// many observers received it.
func (r *Recorder) RecordEventPublished(kind string, delivered int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.events[kind] += delivered
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordEvent(kind, delivered)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of upstream rate limit responses seen.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// Cycles returns the number of polling cycles recorded.
func (r *Recorder) Cycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles
}

// EventDeliveries returns the delivery count recorded for an event kind.
func (r *Recorder) EventDeliveries(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[kind]
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastWait        time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastWait:        stats.lastWait,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
