// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	App       AppConfig       `koanf:"app"`
	Store     StoreConfig     `koanf:"store"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AppConfig holds settings for the rendered application shell.
type AppConfig struct {
	// Title is the document title of every rendered page.
	Title string `koanf:"title"`
	// MountID is the id of the container element views render into.
	MountID string `koanf:"mount_id"`
	// MaxRedirects bounds redirect chains during route resolution.
	MaxRedirects int `koanf:"max_redirects"`
	// BulkWorkers bounds concurrent store calls in bulk todo updates.
	BulkWorkers int `koanf:"bulk_workers"`
}

// StoreConfig selects and configures the todo store.
type StoreConfig struct {
	// Driver is "memory" or "redis".
	Driver         string               `koanf:"driver"`
	Redis          RedisConfig          `koanf:"redis"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RedisConfig holds connection settings for the redis store driver.
type RedisConfig struct {
	URL       string        `koanf:"url"`
	KeyPrefix string        `koanf:"key_prefix"`
	Timeout   time.Duration `koanf:"timeout"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig limits write requests to the todo API.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
