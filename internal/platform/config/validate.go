package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.App.validate(),
		c.Store.validate(),
		c.RateLimit.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (a *AppConfig) validate() error {
	var errs []error

	if strings.TrimSpace(a.MountID) == "" {
		errs = append(errs, errors.New("app.mount_id must not be empty"))
	}
	if strings.ContainsAny(a.MountID, " \t\"'<>") {
		errs = append(errs, fmt.Errorf("app.mount_id must be a plain element id, got %q", a.MountID))
	}
	if a.MaxRedirects < 1 {
		errs = append(errs, fmt.Errorf("app.max_redirects must be >= 1, got %d", a.MaxRedirects))
	}
	if a.BulkWorkers < 1 {
		errs = append(errs, fmt.Errorf("app.bulk_workers must be >= 1, got %d", a.BulkWorkers))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case "memory":
		// No further settings.
	case "redis":
		if s.Redis.URL == "" {
			errs = append(errs, errors.New("store.redis.url must not be empty when driver is redis"))
		}
		if s.Redis.Timeout <= 0 {
			errs = append(errs, errors.New("store.redis.timeout must be positive"))
		}
		if s.CircuitBreaker.MaxFailures < 1 {
			errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
				s.CircuitBreaker.MaxFailures))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: memory, redis; got %q", s.Driver))
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit.requests_per_second must not be negative, got %f", r.RequestsPerSecond)
	}
	if r.RequestsPerSecond > 0 && r.BurstSize < 1 {
		return fmt.Errorf("rate_limit.burst_size must be >= 1 when limiting is enabled, got %d", r.BurstSize)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
