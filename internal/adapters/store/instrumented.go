// Package store holds the todo store drivers (memory, redisstore) and the
// decorator that records their operation metrics.
package store

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// Instrumented records store.operation.duration around every call to the
// wrapped store.
type Instrumented struct {
	next    ports.TodoStore
	driver  string
	metrics *telemetry.Metrics
}

var _ ports.TodoStore = (*Instrumented)(nil)

// Instrument wraps next. With nil metrics it returns next unchanged.
func Instrument(next ports.TodoStore, driver string, metrics *telemetry.Metrics) ports.TodoStore {
	if metrics == nil {
		return next
	}
	return &Instrumented{next: next, driver: driver, metrics: metrics}
}

func (s *Instrumented) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	start := time.Now()
	out, err := s.next.List(ctx, filter)
	s.metrics.RecordStoreOp(ctx, s.driver, "list", start, err)
	return out, err
}

func (s *Instrumented) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	start := time.Now()
	out, err := s.next.Get(ctx, id)
	s.metrics.RecordStoreOp(ctx, s.driver, "get", start, err)
	return out, err
}

func (s *Instrumented) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	start := time.Now()
	out, err := s.next.Create(ctx, t)
	s.metrics.RecordStoreOp(ctx, s.driver, "create", start, err)
	return out, err
}

func (s *Instrumented) Patch(ctx context.Context, id int64, p todo.Patch) (*todo.Todo, error) {
	start := time.Now()
	out, err := s.next.Patch(ctx, id, p)
	s.metrics.RecordStoreOp(ctx, s.driver, "patch", start, err)
	return out, err
}

func (s *Instrumented) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.metrics.RecordStoreOp(ctx, s.driver, "delete", start, err)
	return err
}
