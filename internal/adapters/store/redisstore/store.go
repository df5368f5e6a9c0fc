// Package redisstore provides a Redis-backed [ports.TodoStore].
//
// Layout, for a key prefix P:
//
//	P + "todos"      hash: todo ID -> todo JSON
//	P + "todos:seq"  counter: last assigned todo ID
//
// Every call runs through a circuit breaker. While the breaker is open calls
// fail fast with domain.ErrUnavailable instead of waiting on Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-app/internal/domain"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/platform/config"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// Name is the driver name reported in metrics and health results.
const Name = "redis"

const defaultTimeout = 2 * time.Second

// maxPatchAttempts bounds the compare-and-set retries of a single Patch.
const maxPatchAttempts = 8

var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// casScript swaps a hash field only while it still holds the value the
// caller read. It returns -1 for a missing field, 0 when the value moved on
// and 1 after the write.
var casScript = redis.NewScript(`
local current = redis.call("HGET", KEYS[1], ARGV[1])
if not current then
  return -1
end
if current ~= ARGV[2] then
  return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[3])
return 1
`)

// Store persists todos in Redis.
type Store struct {
	client  *redis.Client
	hashKey string
	seqKey  string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
}

// New wraps an existing client. The caller owns the client and closes it.
func New(client *redis.Client, cfg config.StoreConfig, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := cfg.Redis.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        Name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// Misses and bad input are answers, not outages.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, domain.ErrNotFound) ||
				errors.Is(err, domain.ErrValidation) ||
				errors.Is(err, domain.ErrConflict)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		client:  client,
		hashKey: cfg.Redis.KeyPrefix + "todos",
		seqKey:  cfg.Redis.KeyPrefix + "todos:seq",
		timeout: timeout,
		breaker: cb,
		logger:  logger,
	}
}

// Name identifies the driver. Together with HealthCheck it satisfies
// ports.HealthChecker.
func (s *Store) Name() string { return Name }

// HealthCheck pings Redis unless the breaker is already open.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch s.breaker.State() {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", Name)
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", Name)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: ping: %w", Name, err)
	}
	return nil
}

// List returns matching todos ordered by ID.
func (s *Store) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	var out []todo.Todo
	err := s.execute(ctx, "list", func(ctx context.Context) error {
		raw, err := s.client.HGetAll(ctx, s.hashKey).Result()
		if err != nil {
			return unavailable("hgetall", err)
		}

		out = make([]todo.Todo, 0, len(raw))
		for field, data := range raw {
			t, err := decode(field, data)
			if err != nil {
				return err
			}
			if filter.Matches(t) {
				out = append(out, *t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b todo.Todo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	var got *todo.Todo
	err := s.execute(ctx, "get", func(ctx context.Context) error {
		field := strconv.FormatInt(id, 10)
		data, err := s.client.HGet(ctx, s.hashKey, field).Result()
		if errors.Is(err, redis.Nil) {
			return notFound(id)
		}
		if err != nil {
			return unavailable("hget", err)
		}
		got, err = decode(field, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return got, nil
}

func (s *Store) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	stored := t.Clone()
	err := s.execute(ctx, "create", func(ctx context.Context) error {
		id, err := s.client.Incr(ctx, s.seqKey).Result()
		if err != nil {
			return unavailable("incr", err)
		}
		stored.ID = id

		data, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("encoding todo: %w", err)
		}
		if err := s.client.HSet(ctx, s.hashKey, strconv.FormatInt(id, 10), data).Err(); err != nil {
			return unavailable("hset", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Patch merges p into the stored todo. The read and the write are tied by a
// compare-and-set on the stored JSON, retried while other writers win the
// race for the same todo.
func (s *Store) Patch(ctx context.Context, id int64, p todo.Patch) (*todo.Todo, error) {
	field := strconv.FormatInt(id, 10)
	var out *todo.Todo
	err := s.execute(ctx, "patch", func(ctx context.Context) error {
		for range maxPatchAttempts {
			raw, err := s.client.HGet(ctx, s.hashKey, field).Result()
			if errors.Is(err, redis.Nil) {
				return notFound(id)
			}
			if err != nil {
				return unavailable("hget", err)
			}
			current, err := decode(field, raw)
			if err != nil {
				return err
			}

			next := p.Apply(current)
			next.ID = id
			if err := next.Validate(); err != nil {
				return err
			}
			data, err := json.Marshal(next)
			if err != nil {
				return fmt.Errorf("encoding todo: %w", err)
			}

			n, err := casScript.Run(ctx, s.client, []string{s.hashKey}, field, raw, data).Int()
			if err != nil {
				return unavailable("cas script", err)
			}
			switch n {
			case -1:
				return notFound(id)
			case 1:
				out = &next
				return nil
			}
		}
		return fmt.Errorf("todo %d: %w: still changing after %d attempts", id, domain.ErrConflict, maxPatchAttempts)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.execute(ctx, "delete", func(ctx context.Context) error {
		n, err := s.client.HDel(ctx, s.hashKey, strconv.FormatInt(id, 10)).Result()
		if err != nil {
			return unavailable("hdel", err)
		}
		if n == 0 {
			return notFound(id)
		}
		return nil
	})
}

// execute runs fn through the breaker under a per-call deadline and a
// client span.
func (s *Store) execute(ctx context.Context, op string, fn func(context.Context) error) error {
	ctx, span := otel.GetTracerProvider().Tracer("redisstore").Start(ctx, "redis "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", op),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s store: %w: %w", Name, domain.ErrUnavailable, err)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func decode(field, data string) (*todo.Todo, error) {
	var t todo.Todo
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return nil, fmt.Errorf("decoding stored todo %s: %w", field, err)
	}
	return &t, nil
}

func notFound(id int64) error {
	return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
}

func unavailable(cmd string, err error) error {
	return fmt.Errorf("redis %s: %w: %w", cmd, domain.ErrUnavailable, err)
}

// toUint32 clamps v into the uint32 range; negatives become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
