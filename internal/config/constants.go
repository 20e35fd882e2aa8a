package config

const (
	envPort         = "PORT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envRetryMax     = "LOOKUP_RETRY_ATTEMPTS"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultRetryMax    = 3
	defaultService     = "football-events-service"
)
