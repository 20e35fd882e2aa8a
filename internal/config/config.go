package config

// Config holds runtime configuration for the server.
type Config struct {
	Port                string
	LookupRetryAttempts int
	FootballData        FootballDataConfig
	Metrics             MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:                envOrDefault(envPort, defaultPort),
		LookupRetryAttempts: intEnvOrDefault(envRetryMax, defaultRetryMax),
		FootballData:        loadFootballData(),
		Metrics:             loadMetrics(),
	}
}
