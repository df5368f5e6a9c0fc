// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-app/internal/domain"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Todo   *handlers.TodoHandler
	Route  *handlers.RouteHandler
	View   *handlers.ViewHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. writeLimit wraps the
// todo endpoints that mutate state; nil leaves them unlimited.
func NewRouter(
	h Handlers,
	writeLimit func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	if writeLimit == nil {
		writeLimit = func(next http.Handler) http.Handler { return next }
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(apiNotFound)

		// View route table.
		r.Get("/routes", h.Route.ListRoutes)
		r.Get("/routes/resolve", h.Route.ResolveRoute)

		// Todo reads.
		r.Get("/todos", h.Todo.ListTodos)
		r.Get("/todos/{id}", h.Todo.GetTodo)

		// Todo writes.
		r.Group(func(r chi.Router) {
			r.Use(writeLimit)
			r.Post("/todos", h.Todo.CreateTodo)
			r.Post("/todos/done", h.Todo.SetDone)
			r.Patch("/todos/{id}", h.Todo.UpdateTodo)
			r.Delete("/todos/{id}", h.Todo.DeleteTodo)
		})
	})

	// Everything else is a view path resolved against the route table.
	r.Get("/*", h.View.Serve)

	return r
}

// apiNotFound answers unknown API paths with a problem document, like every
// other API error.
func apiNotFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, fmt.Errorf("no endpoint at %s: %w", r.URL.Path, domain.ErrNotFound))
}
