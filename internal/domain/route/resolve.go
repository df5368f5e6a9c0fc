package route

import (
	"fmt"
	"strings"
)

// DefaultMaxRedirects bounds how many redirects one resolution may follow.
const DefaultMaxRedirects = 8

// Resolution is the outcome of resolving a path against a table.
type Resolution struct {
	// Path is the normalised path that produced View. It differs from the
	// requested path when a redirect was followed.
	Path      string
	View      View
	RouteName string
	Params    map[string]string
	// RedirectedFrom lists the paths that redirected, in the order visited.
	RedirectedFrom []string
}

// Redirected reports whether at least one redirect was followed.
func (r Resolution) Redirected() bool {
	return len(r.RedirectedFrom) > 0
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxRedirects overrides DefaultMaxRedirects. Values below 1 are ignored.
func WithMaxRedirects(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxRedirects = n
		}
	}
}

// Resolver matches paths against a Table. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	table        Table
	patterns     []pattern
	maxRedirects int
}

// NewResolver compiles the table's patterns. It fails only on malformed
// patterns; ordering problems are reported by Table.Validate.
func NewResolver(table Table, opts ...Option) (*Resolver, error) {
	patterns := make([]pattern, len(table.routes))
	for i, rt := range table.routes {
		p, err := parsePattern(rt.Path)
		if err != nil {
			return nil, fmt.Errorf("compiling route %d: %w", i, err)
		}
		patterns[i] = p
	}

	r := &Resolver{
		table:        table,
		patterns:     patterns,
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Table returns the table the resolver was built from.
func (r *Resolver) Table() Table {
	return r.table
}

// Resolve walks the table in order and returns the first matching view.
// Redirect entries restart resolution at their target. A redirect that
// revisits a path, or a chain longer than the configured limit, returns
// ErrRedirectLoop. ErrNoRoute is returned when nothing matches, which a
// table ending in a catch-all never does.
func (r *Resolver) Resolve(path string) (Resolution, error) {
	current, parts := normalize(path)
	visited := make(map[string]bool)
	var chain []string

	for {
		idx, params := r.match(parts)
		if idx < 0 {
			return Resolution{}, fmt.Errorf("%w: %s", ErrNoRoute, current)
		}

		rt := r.table.routes[idx]
		if !rt.IsRedirect() {
			if params == nil {
				params = map[string]string{}
			}
			return Resolution{
				Path:           current,
				View:           rt.View,
				RouteName:      rt.Name,
				Params:         params,
				RedirectedFrom: chain,
			}, nil
		}

		visited[current] = true
		chain = append(chain, current)

		next, nextParts := normalize(rt.Redirect)
		if visited[next] || len(chain) > r.maxRedirects {
			return Resolution{}, fmt.Errorf("%w: %s -> %s",
				ErrRedirectLoop, strings.Join(chain, " -> "), next)
		}
		current, parts = next, nextParts
	}
}

func (r *Resolver) match(parts []string) (int, map[string]string) {
	for i, p := range r.patterns {
		if params, ok := p.match(parts); ok {
			return i, params
		}
	}
	return -1, nil
}
