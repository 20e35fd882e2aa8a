package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{envPort, envRetryMax, envFDBaseURL, envFDAPIKey, envMetricsOn, envMetricsPort, envOtelEndpoint, envOtelService} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "4000" {
		t.Errorf("Port = %q, want 4000", cfg.Port)
	}
	if cfg.LookupRetryAttempts != 3 {
		t.Errorf("LookupRetryAttempts = %d, want 3", cfg.LookupRetryAttempts)
	}
	if cfg.FootballData.BaseURL != "https://api.football-data.org/v4" {
		t.Errorf("BaseURL = %q", cfg.FootballData.BaseURL)
	}
	if cfg.FootballData.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.FootballData.APIKey)
	}
	if !cfg.Metrics.Enabled {
		t.Errorf("Metrics.Enabled = false, want true")
	}
	if cfg.Metrics.Port != "9090" {
		t.Errorf("Metrics.Port = %q, want 9090", cfg.Metrics.Port)
	}
	if cfg.Metrics.ServiceName != "football-events-service" {
		t.Errorf("ServiceName = %q", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envRetryMax, "5")
	t.Setenv(envFDBaseURL, "http://localhost:9999")
	t.Setenv(envFDAPIKey, "secret")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envOtelEndpoint, "otel-collector:4318")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.LookupRetryAttempts != 5 {
		t.Errorf("LookupRetryAttempts = %d", cfg.LookupRetryAttempts)
	}
	if cfg.FootballData.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q", cfg.FootballData.BaseURL)
	}
	if cfg.FootballData.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.FootballData.APIKey)
	}
	if cfg.Metrics.Enabled {
		t.Errorf("Metrics.Enabled = true, want false")
	}
	if cfg.Metrics.OtlpEndpoint != "otel-collector:4318" {
		t.Errorf("OtlpEndpoint = %q", cfg.Metrics.OtlpEndpoint)
	}
}

func TestIntEnvOrDefaultRejectsGarbage(t *testing.T) {
	t.Setenv(envRetryMax, "not-a-number")
	if got := intEnvOrDefault(envRetryMax, 3); got != 3 {
		t.Fatalf("got %d, want default", got)
	}
	t.Setenv(envRetryMax, "-2")
	if got := intEnvOrDefault(envRetryMax, 3); got != 3 {
		t.Fatalf("non-positive value must fall back, got %d", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_DURATION", "45s")
	if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != 45*time.Second {
		t.Fatalf("got %v", got)
	}
	t.Setenv("TEST_DURATION", "bogus")
	if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("invalid duration must fall back, got %v", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"maybe", true, true},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("TEST_BOOL", tc.def); got != tc.want {
			t.Errorf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}
