package config

const (
	defaultServerPort = 8080

	defaultMaxRedirects = 8
	defaultBulkWorkers  = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"app.title":         "Todo",
		"app.mount_id":      "app",
		"app.max_redirects": defaultMaxRedirects,
		"app.bulk_workers":  defaultBulkWorkers,

		"store.driver":                          "memory",
		"store.redis.url":                       "",
		"store.redis.key_prefix":                "todo-app:",
		"store.redis.timeout":                   "2s",
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"rate_limit.requests_per_second": 0,
		"rate_limit.burst_size":          defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-app",
	}
}
