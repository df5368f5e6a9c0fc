package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-app/internal/domain/route"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

var _ ports.NavigationService = (*NavigationService)(nil)

// NavigationService implements ports.NavigationService: it resolves a path
// against the route table and gathers the data the resulting view shows.
type NavigationService struct {
	resolver *route.Resolver
	todos    ports.TodoService
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewNavigationService creates a NavigationService. metrics may be nil.
func NewNavigationService(
	resolver *route.Resolver,
	todos ports.TodoService,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *NavigationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NavigationService{
		resolver: resolver,
		todos:    todos,
		metrics:  metrics,
		logger:   logger,
	}
}

// Navigate resolves path. The home view also carries the todo list.
func (s *NavigationService) Navigate(ctx context.Context, path string) (*ports.Page, error) {
	res, err := s.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}

	page := &ports.Page{Resolution: res}
	// A redirect is answered before anything renders.
	if res.View == route.ViewHome && !res.Redirected() {
		todos, err := s.todos.ListTodos(ctx, todo.Filter{})
		if err != nil {
			return nil, err
		}
		page.Todos = todos
	}
	return page, nil
}

// Resolve maps path onto the route table and records the outcome.
func (s *NavigationService) Resolve(ctx context.Context, path string) (route.Resolution, error) {
	res, err := s.resolver.Resolve(path)
	s.metrics.RecordResolution(ctx, string(res.View), res.Redirected(), err)
	if err != nil {
		s.logger.WarnContext(ctx, "route resolution failed",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return route.Resolution{}, err
	}
	return res, nil
}

// Routes returns the route table in declaration order.
func (s *NavigationService) Routes() []route.Route {
	return s.resolver.Table().Routes()
}

