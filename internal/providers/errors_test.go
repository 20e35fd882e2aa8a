package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"configuration", &ConfigurationError{Reason: "missing API key"}, false},
		{"authentication", &AuthenticationError{Provider: "footballdata"}, false},
		{"rate limit", &RateLimitError{Provider: "footballdata", StatusCode: 429}, true},
		{"upstream", &UpstreamError{Provider: "footballdata", StatusCode: 500}, true},
		{"transport", &TransportError{Provider: "footballdata", Err: errors.New("dial tcp")}, true},
		{"wrapped transport", fmt.Errorf("cycle: %w", &TransportError{Err: errors.New("eof")}), true},
		{"plain error", errors.New("something"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryable(tc.err); got != tc.want {
				t.Fatalf("IsRetryable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAsRateLimitError(t *testing.T) {
	rl := &RateLimitError{Provider: "footballdata", StatusCode: 429, Message: "too many requests"}
	wrapped := fmt.Errorf("fetch: %w", rl)

	got, ok := AsRateLimitError(wrapped)
	if !ok || got.StatusCode != 429 {
		t.Fatalf("expected unwrapped rate limit error, got ok=%v", ok)
	}
	if _, ok := AsRateLimitError(errors.New("other")); ok {
		t.Fatalf("unexpected match for unrelated error")
	}
}

func TestErrorMessages(t *testing.T) {
	if msg := (&ConfigurationError{Reason: "missing API key"}).Error(); !strings.Contains(msg, "missing API key") {
		t.Errorf("configuration message = %q", msg)
	}
	if msg := (&RateLimitError{StatusCode: 429, Message: "slow down"}).Error(); !strings.Contains(msg, "429") {
		t.Errorf("rate limit message = %q", msg)
	}
	if msg := (&RateLimitError{}).Error(); msg != "provider rate limited" {
		t.Errorf("default rate limit message = %q", msg)
	}
	if msg := (&UpstreamError{Provider: "footballdata", StatusCode: 502, Body: "bad gateway"}).Error(); !strings.Contains(msg, "502") {
		t.Errorf("upstream message = %q", msg)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := &TransportError{Provider: "footballdata", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("expected Unwrap to expose the inner error")
	}
}
