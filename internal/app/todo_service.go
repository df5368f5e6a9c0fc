// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-app/internal/app/fanout"
	"github.com/jsamuelsen11/todo-app/internal/domain"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// DefaultBulkWorkers bounds concurrent store calls when no worker count is
// configured.
const DefaultBulkWorkers = 4

// maxBulkIDs caps the number of todos a single SetDone call may touch.
const maxBulkIDs = 100

var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoStore. It
// validates input, logs failures and leaves persistence to the store.
type TodoService struct {
	store   ports.TodoStore
	workers int
	logger  *slog.Logger
}

// NewTodoService creates a TodoService. workers bounds the concurrency of
// SetDone; values < 1 fall back to DefaultBulkWorkers.
func NewTodoService(store ports.TodoStore, workers int, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if workers < 1 {
		workers = DefaultBulkWorkers
	}
	return &TodoService{store: store, workers: workers, logger: logger}
}

// ListTodos returns todos matching filter, ordered by ID.
func (s *TodoService) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	todos, err := s.store.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return todos, nil
}

// GetTodo returns a single todo.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		s.logError(ctx, "GetTodo", id, err)
		return nil, err
	}
	return t, nil
}

// CreateTodo validates t and stores it under a fresh ID. The ID on t is
// ignored.
func (s *TodoService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	if t == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"todo": domain.MsgRequired}}
	}
	candidate := t.Clone()
	candidate.ID = 0
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, &candidate)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "created todo", slog.Int64("id", created.ID))
	return created, nil
}

// UpdateTodo applies patch to the stored todo. The store merges the patch
// atomically, so concurrent updates of different fields all survive.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, patch ports.TodoPatch) (*todo.Todo, error) {
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"text": domain.MsgMustNotEmpty}}
	}

	updated, err := s.store.Patch(ctx, id, patch)
	if err != nil {
		s.logError(ctx, "UpdateTodo", id, err)
		return nil, err
	}
	return updated, nil
}

// DeleteTodo removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logError(ctx, "DeleteTodo", id, err)
		return err
	}
	s.logger.InfoContext(ctx, "deleted todo", slog.Int64("id", id))
	return nil
}

// SetDone sets Done on every listed todo. Duplicate IDs are collapsed.
// Each update succeeds or fails on its own; failures are reported in
// BulkResult.Errors in input order. The returned error is reserved for
// requests that are invalid as a whole.
func (s *TodoService) SetDone(ctx context.Context, ids []int64, done bool) (*ports.BulkResult, error) {
	ids = dedupe(ids)
	if err := validateBulkIDs(ids); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.workers, ids, func(ctx context.Context, id int64) (*todo.Todo, error) {
		return s.UpdateTodo(ctx, id, ports.TodoPatch{Done: &done})
	})

	out := &ports.BulkResult{
		Updated: make([]todo.Todo, 0, len(ids)),
		Errors:  []ports.BulkError{},
	}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkError{TodoID: ids[i], Err: r.Err})
			continue
		}
		out.Updated = append(out.Updated, *r.Value)
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "bulk done update partially failed",
			slog.String("operation", "SetDone"),
			slog.Int("requested", len(ids)),
			slog.Int("failed", len(out.Errors)),
		)
	}
	return out, nil
}

func (s *TodoService) logError(ctx context.Context, op string, id int64, err error) {
	s.logger.ErrorContext(ctx, "todo operation failed",
		slog.String("operation", op),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}

func dedupe(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func validateBulkIDs(ids []int64) error {
	switch {
	case len(ids) == 0:
		return &domain.ValidationError{Fields: map[string]string{"ids": domain.MsgMustNotEmpty}}
	case len(ids) > maxBulkIDs:
		return &domain.ValidationError{Fields: map[string]string{
			"ids": fmt.Sprintf("must contain at most %d ids, got %d", maxBulkIDs, len(ids)),
		}}
	}
	for _, id := range ids {
		if id < 1 {
			return &domain.ValidationError{Fields: map[string]string{
				"ids": fmt.Sprintf("must be positive, got %d", id),
			}}
		}
	}
	return nil
}
