package footballdata

import "time"

const providerName = "footballdata"

const (
	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultHTTPTimeout = 10 * time.Second

	// Free-tier quota: 10 requests per sliding minute. Two slots are
	// reserved for high-priority live polling so background lookups
	// cannot starve it.
	fullQuota      = 10
	reservedBuffer = 2
	limiterWindow  = time.Minute
	// Added to computed waits so an entry is guaranteed to have left
	// the window by the time the caller wakes.
	limiterSafetyMargin = 250 * time.Millisecond

	directoryTTL      = 24 * time.Hour
	directoryPageSize = 500
)
