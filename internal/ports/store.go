package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
)

// TodoStore defines the persistence port for todos.
// Implemented by the store adapters (memory, redis); called by the application layer.
type TodoStore interface {
	// List returns todos matching the filter, ordered by ID.
	// Pass a zero-value Filter to list all todos.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create stores a new todo, assigning it a fresh unique ID. Any ID on
	// the input is ignored.
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Patch applies p to the stored todo as one atomic step, so concurrent
	// patches touching different fields never drop each other's changes.
	// Returns domain.ErrNotFound if the todo does not exist,
	// domain.ErrValidation if the result is invalid and domain.ErrConflict
	// if the store gave up on a contended record.
	Patch(ctx context.Context, id int64, p todo.Patch) (*todo.Todo, error)

	// Delete removes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id int64) error
}
