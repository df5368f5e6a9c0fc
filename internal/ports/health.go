package ports

import "context"

// HealthChecker reports whether one dependency of the service can take
// traffic. The todo store backends (memory, redis) implement it.
type HealthChecker interface {
	// Name identifies the checker in readiness output, e.g. "redis".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honor
	// ctx cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
