package main

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/todo-app/internal/adapters/store"
	"github.com/jsamuelsen11/todo-app/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todo-app/internal/adapters/store/redisstore"
	"github.com/jsamuelsen11/todo-app/internal/platform/config"
	"github.com/jsamuelsen11/todo-app/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// todoBackend is what every store driver provides.
type todoBackend interface {
	ports.TodoStore
	ports.HealthChecker
}

// storeBackend is the configured store driver plus the resources it owns.
type storeBackend struct {
	driver  string
	store   ports.TodoStore
	checker ports.HealthChecker
	client  *redis.Client // nil for the memory driver
}

func openStore(cfg config.StoreConfig, logger *slog.Logger) (*storeBackend, error) {
	var (
		backend todoBackend
		client  *redis.Client
	)

	switch cfg.Driver {
	case memory.Name:
		backend = memory.New()
	case redisstore.Name:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		client = redis.NewClient(opts)
		backend = redisstore.New(client, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	logger.Info("todo store ready", slog.String("driver", cfg.Driver))
	return &storeBackend{
		driver:  cfg.Driver,
		store:   backend,
		checker: backend,
		client:  client,
	}, nil
}

// instrumented wraps the store with operation metrics. metrics may be nil.
func (b *storeBackend) instrumented(metrics *telemetry.Metrics) ports.TodoStore {
	return store.Instrument(b.store, b.driver, metrics)
}

// Close releases the Redis client, if any.
func (b *storeBackend) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}
