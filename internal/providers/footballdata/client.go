package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"football-events-service/internal/domain"
	"football-events-service/internal/metrics"
	"football-events-service/internal/providers"
)

// Config controls how the client reaches the football-data API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches matches from the football-data API, maps them to
// domain models and throttles all outbound calls through a shared
// sliding-window limiter.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	limiter    *limiter
	now        func() time.Time

	keyMu  sync.RWMutex
	apiKey string

	directory directoryCache
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		limiter:    newLimiter(fullQuota, reservedBuffer, limiterWindow),
		now:        time.Now,
		apiKey:     cfg.APIKey,
	}
}

// SetAPIKey replaces the upstream credential at runtime. The next
// request uses the new key; in-flight requests are unaffected.
func (c *Client) SetAPIKey(key string) {
	c.keyMu.Lock()
	c.apiKey = key
	c.keyMu.Unlock()
}

func (c *Client) currentKey() string {
	c.keyMu.RLock()
	defer c.keyMu.RUnlock()
	return c.apiKey
}

// MatchesForDate returns all matches scheduled for the given day.
func (c *Client) MatchesForDate(ctx context.Context, date string, highPriority bool) ([]domain.Match, error) {
	if date == "" {
		date = c.now().UTC().Format("2006-01-02")
	}
	query := url.Values{}
	query.Set("dateFrom", date)
	query.Set("dateTo", date)
	return c.fetchMatches(ctx, "/matches", query, highPriority)
}

// MatchesForTeam returns a team's matches within [dateFrom, dateTo],
// optionally filtered by status.
func (c *Client) MatchesForTeam(ctx context.Context, teamID, dateFrom, dateTo string, statuses []domain.Status) ([]domain.Match, error) {
	query := url.Values{}
	if dateFrom != "" {
		query.Set("dateFrom", dateFrom)
	}
	if dateTo != "" {
		query.Set("dateTo", dateTo)
	}
	if len(statuses) > 0 {
		parts := make([]string, 0, len(statuses))
		for _, s := range statuses {
			parts = append(parts, string(s))
		}
		query.Set("status", strings.Join(parts, ","))
	}
	return c.fetchMatches(ctx, "/teams/"+url.PathEscape(teamID)+"/matches", query, false)
}

// LiveMatchesForTeam returns the team's currently running matches.
func (c *Client) LiveMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error) {
	query := url.Values{}
	query.Set("status", string(domain.StatusInPlay))
	return c.fetchMatches(ctx, "/teams/"+url.PathEscape(teamID)+"/matches", query, false)
}

func (c *Client) fetchMatches(ctx context.Context, path string, query url.Values, highPriority bool) ([]domain.Match, error) {
	var payload matchesResponse
	if err := c.get(ctx, path, query, highPriority, &payload); err != nil {
		return nil, err
	}
	matches := make([]domain.Match, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		matches = append(matches, mapMatch(m))
	}
	return matches, nil
}

// get performs a throttled, authenticated GET and decodes the body into
// out. Error mapping: 429 rate limit, 403 authentication, other non-2xx
// upstream, network transport. A missing credential fails fast without
// touching the limiter.
func (c *Client) get(ctx context.Context, path string, query url.Values, highPriority bool, out any) error {
	key := c.currentKey()
	if key == "" {
		return &providers.ConfigurationError{Reason: "missing API key"}
	}

	waited, err := c.limiter.acquire(ctx, highPriority)
	if err != nil {
		return err
	}
	if waited > limiterSafetyMargin {
		c.metrics.RecordRateLimitWait(providerName, waited)
		c.logDebug("throttled upstream call", slog.Int64("wait_ms", waited.Milliseconds()), slog.String("path", path))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("X-Auth-Token", key)

	start := c.now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordProviderAttempt(providerName, c.now().Sub(start), err)
	if err != nil {
		return &providers.TransportError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.metrics.RecordRateLimitHit(providerName)
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	case resp.StatusCode == http.StatusForbidden:
		return &providers.AuthenticationError{Provider: providerName}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", providerName, err)
	}
	return nil
}

func (c *Client) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
