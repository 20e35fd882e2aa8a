package engine

import (
	"sync"
	"time"

	"football-events-service/internal/domain"
)

// Markers latches the one-shot events already emitted for a match.
// Each flag transitions false to true exactly once and never reverts.
type Markers struct {
	Kickoff    bool
	Halftime   bool
	SecondHalf bool
	Finished   bool
}

// Snapshot is the last observed state of a match plus its emission
// latches. FiredThresholds records the starts-soon minute thresholds
// already announced for this match.
type Snapshot struct {
	Match           domain.Match
	Markers         Markers
	FiredThresholds map[int]bool
}

// snapshotCache holds per-match snapshots between cycles. Only the
// polling cycle writes; point queries from other goroutines read, hence
// the lock.
type snapshotCache struct {
	mu      sync.RWMutex
	entries map[string]*Snapshot
}

func newSnapshotCache() *snapshotCache {
	return &snapshotCache{entries: make(map[string]*Snapshot)}
}

// get returns a copy of the entry for the match, or nil if unseen.
func (c *snapshotCache) get(matchID string) *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[matchID]
	if !ok {
		return nil
	}
	clone := *entry
	clone.FiredThresholds = cloneThresholds(entry.FiredThresholds)
	return &clone
}

// commit replaces the entry for a match with a fresh snapshot, carrying
// forward the marker set handed in.
func (c *snapshotCache) commit(snap Snapshot) {
	if snap.FiredThresholds == nil {
		snap.FiredThresholds = make(map[int]bool)
	}
	c.mu.Lock()
	c.entries[snap.Match.ID] = &snap
	c.mu.Unlock()
}

// markThresholds latches starts-soon thresholds for a match.
func (c *snapshotCache) markThresholds(matchID string, fired []int) {
	if len(fired) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[matchID]
	if !ok {
		return
	}
	for _, t := range fired {
		entry.FiredThresholds[t] = true
	}
}

// evict drops terminal matches whose estimated end plus grace has
// passed, and stale entries for matches no longer in the relevant set
// whose kickoff day is over.
func (c *snapshotCache) evict(now time.Time, present map[string]struct{}) {
	cutoff := now.Add(-(estimatedDuration + evictionGrace))
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, entry := range c.entries {
		if entry.Match.Status.Terminal() && entry.Match.Kickoff.Before(cutoff) {
			delete(c.entries, id)
			continue
		}
		if _, ok := present[id]; !ok && now.Sub(entry.Match.Kickoff) > 24*time.Hour {
			delete(c.entries, id)
		}
	}
}

// find returns a copy of the first snapshot matching the predicate.
func (c *snapshotCache) find(match func(domain.Match) bool) (domain.Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.entries {
		if match(entry.Match) {
			return entry.Match, true
		}
	}
	return domain.Match{}, false
}

func (c *snapshotCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cloneThresholds(src map[int]bool) map[int]bool {
	dst := make(map[int]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
