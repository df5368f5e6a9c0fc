package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-app/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Store.Driver != "memory" {
		t.Errorf("Store.Driver = %q, want \"memory\" for local", cfg.Store.Driver)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Store.Driver != "redis" {
		t.Errorf("Store.Driver = %q, want \"redis\"", cfg.Store.Driver)
	}
	if cfg.Store.Redis.URL == "" {
		t.Error("Store.Redis.URL is empty, want non-empty for prod")
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		t.Errorf("RateLimit.RequestsPerSecond = %v, want > 0 for prod", cfg.RateLimit.RequestsPerSecond)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.App.MountID != "app" {
		t.Errorf("App.MountID = %q, want \"app\" (from base)", cfg.App.MountID)
	}
	if cfg.Store.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Store.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Store.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "server:\n  port: 9000\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "log:\n  level: warn\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000 (from base)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from profile)", cfg.Log.Level)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s (default)", cfg.Server.ReadTimeout)
	}
	if cfg.App.MaxRedirects != 8 {
		t.Errorf("App.MaxRedirects = %d, want 8 (default)", cfg.App.MaxRedirects)
	}
	if cfg.Store.Driver != "memory" {
		t.Errorf("Store.Driver = %q, want \"memory\" (default)", cfg.Store.Driver)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("TODO_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("TODO_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("TODO_STORE_CIRCUIT_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Store.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Store.CircuitBreaker.MaxFailures = %d, want 7 (env override)", cfg.Store.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideKeyOnlyInDefaults(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("TODO_STORE_REDIS_URL", "redis://cache:6379/1")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Store.Redis.URL != "redis://cache:6379/1" {
		t.Errorf("Store.Redis.URL = %q, want env override", cfg.Store.Redis.URL)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_MountID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "my app", `app"`} {
		cfg := validBaseConfig()
		cfg.App.MountID = id

		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() returned nil, want error for mount_id %q", id)
		}
	}
}

func TestValidate_RedisWithoutURL(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Store.Driver = "redis"
	cfg.Store.Redis.URL = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for redis without url")
	}
}

func TestValidate_UnknownStoreDriver(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Store.Driver = "postgres"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown driver")
	}
}

func TestValidate_RateLimitBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.RateLimit.RequestsPerSecond = 10
	cfg.RateLimit.BurstSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for zero burst with limiting enabled")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		App: config.AppConfig{
			Title:        "Todo",
			MountID:      "app",
			MaxRedirects: 8,
			BulkWorkers:  4,
		},
		Store: config.StoreConfig{
			Driver: "memory",
			Redis: config.RedisConfig{
				KeyPrefix: "todo-app:",
				Timeout:   2 * time.Second,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
