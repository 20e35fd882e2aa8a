package events

import "sync"

// Observer receives events for a team it registered interest in.
// Handlers are invoked synchronously from the polling cycle and must
// return promptly; long work should be enqueued, not done inline.
type Observer interface {
	HandleEvent(ev Event)
}

// Bus fans events out to observers keyed by team ID. The publisher does
// not know who is listening; events addressed to a team nobody tracks
// are dropped. Registration is ref-counted per observer, so a team stays
// tracked until its last observer unsubscribes.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[Observer]struct{}
}

// NewBus constructs an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[Observer]struct{})}
}

// Subscribe registers an observer for a team. Subscribing the same
// observer twice is a no-op. It returns the number of teams with at
// least one observer after the call.
func (b *Bus) Subscribe(teamID string, obs Observer) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[teamID]
	if !ok {
		set = make(map[Observer]struct{})
		b.subs[teamID] = set
	}
	set[obs] = struct{}{}
	return len(b.subs)
}

// Unsubscribe removes an observer from a team. The team is forgotten
// once its last observer is gone. It returns the number of teams with
// at least one observer after the call.
func (b *Bus) Unsubscribe(teamID string, obs Observer) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if set, ok := b.subs[teamID]; ok {
		delete(set, obs)
		if len(set) == 0 {
			delete(b.subs, teamID)
		}
	}
	return len(b.subs)
}

// Publish delivers an event to every observer of its addressed team
// and returns the delivery count. Delivery is synchronous: handlers run
// before Publish returns.
func (b *Bus) Publish(ev Event) int {
	b.mu.RLock()
	observers := make([]Observer, 0, 2)
	for obs := range b.subs[ev.Team()] {
		observers = append(observers, obs)
	}
	b.mu.RUnlock()

	for _, obs := range observers {
		obs.HandleEvent(ev)
	}
	return len(observers)
}

// Tracked reports whether any observer is registered for the team.
func (b *Bus) Tracked(teamID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subs[teamID]
	return ok
}

// Teams returns the IDs of all currently tracked teams.
func (b *Bus) Teams() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	return ids
}

// TeamCount returns the number of tracked teams.
func (b *Bus) TeamCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
