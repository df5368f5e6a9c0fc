package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-app/internal/domain/route"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
)

// TodoService defines the service port for todo use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns todos matching the filter, ordered by ID.
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo validates and stores a new todo with a server-assigned ID.
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// UpdateTodo applies a partial update to an existing todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	// Returns domain.ErrValidation if the result fails validation.
	UpdateTodo(ctx context.Context, id int64, patch TodoPatch) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error

	// SetDone marks every listed todo done or not done concurrently. Uses
	// partial success semantics: each update succeeds or fails independently
	// and failures are collected in BulkResult.Errors.
	SetDone(ctx context.Context, ids []int64, done bool) (*BulkResult, error)
}

// TodoPatch carries the fields of a partial update. Nil means "do not change".
type TodoPatch = todo.Patch

// BulkError records a single failed todo update within a bulk operation.
type BulkError struct {
	TodoID int64
	Err    error
}

// BulkResult holds the outcomes of a bulk operation.
// Updated contains successfully updated todos; Errors contains per-item failures.
type BulkResult struct {
	Updated []todo.Todo
	Errors  []BulkError
}

// NavigationService resolves a requested URL path to the page to render.
type NavigationService interface {
	// Navigate resolves path against the route table and loads whatever the
	// resulting view needs. Returns route.ErrRedirectLoop if redirects cycle.
	Navigate(ctx context.Context, path string) (*Page, error)

	// Resolve maps path onto the route table without loading view data.
	// Returns route.ErrRedirectLoop if redirects cycle.
	Resolve(ctx context.Context, path string) (route.Resolution, error)

	// Routes returns the route table in declaration order.
	Routes() []route.Route
}

// Page is a resolved view together with the data it renders.
type Page struct {
	Resolution route.Resolution
	// Todos is populated for the home view only.
	Todos []todo.Todo
}
