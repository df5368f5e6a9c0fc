// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-app/internal/adapters/http"
	"github.com/jsamuelsen11/todo-app/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-app/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/todo-app/internal/app"
	"github.com/jsamuelsen11/todo-app/internal/domain/route"
	"github.com/jsamuelsen11/todo-app/internal/platform/config"
	"github.com/jsamuelsen11/todo-app/internal/platform/health"
	"github.com/jsamuelsen11/todo-app/internal/platform/logging"
	"github.com/jsamuelsen11/todo-app/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-app/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	readinessCheckTimeout = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv(config.EnvPrefix + "PROFILE")
	if profile == "" {
		return errors.New("TODO_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	// Refuse to serve from a table with unreachable or malformed routes.
	table := route.Default()
	if err := table.Validate(); err != nil {
		return fmt.Errorf("validating route table: %w", err)
	}

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, table)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	backend := do.MustInvoke[*storeBackend](injector)
	registry.Register(backend.checker)
	if results := registry.CheckAll(ctx); !health.Healthy(results) {
		logger.Warn("todo store not ready at startup",
			slog.String("driver", backend.driver),
			slog.Any("results", results),
		)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = backend.Close()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := backend.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*storeBackend, error) {
		return openStore(cfg.Store, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoStore, error) {
		backend := do.MustInvoke[*storeBackend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return backend.instrumented(metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		store := do.MustInvoke[ports.TodoStore](i)
		return app.NewTodoService(store, cfg.App.BulkWorkers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*route.Resolver, error) {
		table := do.MustInvoke[route.Table](i)
		return route.NewResolver(table, route.WithMaxRedirects(cfg.App.MaxRedirects))
	})

	do.Provide(injector, func(i do.Injector) (ports.NavigationService, error) {
		resolver := do.MustInvoke[*route.Resolver](i)
		todos := do.MustInvoke[ports.TodoService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewNavigationService(resolver, todos, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(readinessCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RouteHandler, error) {
		nav := do.MustInvoke[ports.NavigationService](i)
		return handlers.NewRouteHandler(nav), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ViewHandler, error) {
		nav := do.MustInvoke[ports.NavigationService](i)
		return handlers.NewViewHandler(nav, handlers.Shell{
			Title:   cfg.App.Title,
			MountID: cfg.App.MountID,
		})
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Todo:   do.MustInvoke[*handlers.TodoHandler](i),
			Route:  do.MustInvoke[*handlers.RouteHandler](i),
			View:   do.MustInvoke[*handlers.ViewHandler](i),
			Health: do.MustInvoke[*handlers.HealthHandler](i),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, middleware.RateLimit(cfg.RateLimit),
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
