// Package memory provides an in-process [ports.TodoStore]. It is the default
// driver for local development and tests; contents are lost on restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todo-app/internal/domain"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// Name is the driver name reported in metrics and health results.
const Name = "memory"

var _ ports.TodoStore = (*Store)(nil)

// Store keeps todos in a map guarded by a RWMutex. IDs come from a
// monotonic counter and are never reused.
type Store struct {
	mu     sync.RWMutex
	todos  map[int64]todo.Todo
	nextID int64
}

// New returns an empty store, optionally seeded. Seed IDs are kept as given
// and the counter starts after the highest one.
func New(seed ...todo.Todo) *Store {
	s := &Store{todos: make(map[int64]todo.Todo, len(seed))}
	for i := range seed {
		t := seed[i].Clone()
		s.todos[t.ID] = t
		s.nextID = max(s.nextID, t.ID)
	}
	return s
}

// Name identifies the driver.
func (s *Store) Name() string { return Name }

// List returns matching todos ordered by ID.
func (s *Store) List(_ context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]todo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if filter.Matches(&t) {
			out = append(out, t.Clone())
		}
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

func (s *Store) Get(_ context.Context, id int64) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, notFound(id)
	}
	c := t.Clone()
	return &c, nil
}

func (s *Store) Create(_ context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := t.Clone()
	stored.ID = s.nextID
	s.todos[stored.ID] = stored

	out := stored.Clone()
	return &out, nil
}

// Patch merges p into the stored todo while holding the write lock.
func (s *Store) Patch(_ context.Context, id int64, p todo.Patch) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.todos[id]
	if !ok {
		return nil, notFound(id)
	}
	stored := p.Apply(&current)
	stored.ID = id
	if err := stored.Validate(); err != nil {
		return nil, err
	}
	s.todos[id] = stored

	out := stored.Clone()
	return &out, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return notFound(id)
	}
	delete(s.todos, id)
	return nil
}

// HealthCheck always succeeds; the store has no external dependency.
func (s *Store) HealthCheck(context.Context) error { return nil }

func notFound(id int64) error {
	return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
}
