package footballdata

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"football-events-service/internal/domain"
)

// directoryCache is a read-through cache for the upstream team
// directory. The dataset is large and changes rarely, so it is held for
// a day; concurrent callers during a reload share one in-flight fetch.
type directoryCache struct {
	mu      sync.RWMutex
	teams   []domain.Team
	expires time.Time
	group   singleflight.Group
}

// Teams returns the team reference dataset, loading it from upstream at
// most once per TTL.
func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	c.directory.mu.RLock()
	if c.directory.teams != nil && c.now().Before(c.directory.expires) {
		teams := c.directory.teams
		c.directory.mu.RUnlock()
		return teams, nil
	}
	c.directory.mu.RUnlock()

	result, err, _ := c.directory.group.Do("teams", func() (any, error) {
		// Re-check under the flight: another caller may have refreshed
		// the cache between the read above and winning the flight.
		c.directory.mu.RLock()
		if c.directory.teams != nil && c.now().Before(c.directory.expires) {
			teams := c.directory.teams
			c.directory.mu.RUnlock()
			return teams, nil
		}
		c.directory.mu.RUnlock()

		teams, err := c.loadTeams(ctx)
		if err != nil {
			return nil, err
		}

		c.directory.mu.Lock()
		c.directory.teams = teams
		c.directory.expires = c.now().Add(directoryTTL)
		c.directory.mu.Unlock()
		return teams, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Team), nil
}

func (c *Client) loadTeams(ctx context.Context) ([]domain.Team, error) {
	var all []domain.Team
	offset := 0
	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(directoryPageSize))
		query.Set("offset", strconv.Itoa(offset))

		var payload teamsResponse
		if err := c.get(ctx, "/teams", query, false, &payload); err != nil {
			return nil, err
		}
		for _, t := range payload.Teams {
			all = append(all, mapTeam(t))
		}
		if len(payload.Teams) < directoryPageSize {
			return all, nil
		}
		offset += directoryPageSize
	}
}
