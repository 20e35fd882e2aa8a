package providers

import (
	"errors"
	"fmt"
)

// ConfigurationError reports missing or invalid client configuration.
// It is not retryable and surfaces to the caller before any upstream
// call is attempted.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("provider configuration invalid: %s", e.Reason)
}

// AuthenticationError reports a credential rejected upstream (HTTP 403).
type AuthenticationError struct {
	Provider string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s: authentication failed", e.Provider)
}

// RateLimitError captures rate limit responses from upstream providers
// (HTTP 429). With client-side throttling in place it should be rare
// and is treated as transient.
type RateLimitError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// UpstreamError captures any other non-2xx upstream response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// TransportError wraps a network-level failure reaching the upstream.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// IsRetryable reports whether an error is transient: transport
// failures, upstream 5xx-style errors and upstream rate limiting.
// Configuration and authentication errors are permanent.
func IsRetryable(err error) bool {
	var (
		cfgErr  *ConfigurationError
		authErr *AuthenticationError
	)
	if errors.As(err, &cfgErr) || errors.As(err, &authErr) {
		return false
	}
	var (
		rlErr *RateLimitError
		upErr *UpstreamError
		trErr *TransportError
	)
	return errors.As(err, &rlErr) || errors.As(err, &upErr) || errors.As(err, &trErr)
}
