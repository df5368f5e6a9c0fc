package route

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundName is the symbolic name of the default catch-all route.
const NotFoundName = "NotFound"

// Table is an ordered, read-only list of routes.
type Table struct {
	routes []Route
}

// NewTable returns a table holding a copy of routes in the given order.
// The table is not validated; call Validate before serving from it.
func NewTable(routes ...Route) Table {
	cp := make([]Route, len(routes))
	copy(cp, routes)
	return Table{routes: cp}
}

// Default returns the application's route table: home at the root, /home
// redirecting to the root, the about page, and a named catch-all that
// renders the not-found view.
func Default() Table {
	return NewTable(
		Route{Path: "/", View: ViewHome},
		Route{Path: "/home", Redirect: "/"},
		Route{Path: "/about", View: ViewAbout},
		Route{Path: "/{pathMatch...}", View: ViewNotFound, Name: NotFoundName},
	)
}

// Routes returns a copy of the table's routes in declaration order.
func (t Table) Routes() []Route {
	cp := make([]Route, len(t.routes))
	copy(cp, t.routes)
	return cp
}

// Len returns the number of routes.
func (t Table) Len() int {
	return len(t.routes)
}

// Validate checks every route and returns all problems joined. Each problem
// wraps ErrInvalidTable; shadowed routes additionally wrap
// ErrUnreachableRoute, and redirect chains that cycle wrap ErrRedirectLoop.
func (t Table) Validate() error {
	var errs []error
	names := make(map[string]int, len(t.routes))
	seen := make(map[string]int, len(t.routes))
	catchAll := -1

	for i, r := range t.routes {
		label := fmt.Sprintf("route %d (%s)", i, r.Path)

		p, err := parsePattern(r.Path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidTable, label, err))
			continue
		}

		switch {
		case r.View == "" && r.Redirect == "":
			errs = append(errs, fmt.Errorf("%w: %s has neither a view nor a redirect", ErrInvalidTable, label))
		case r.View != "" && r.Redirect != "":
			errs = append(errs, fmt.Errorf("%w: %s has both a view and a redirect", ErrInvalidTable, label))
		case r.IsRedirect() && !strings.HasPrefix(r.Redirect, "/"):
			errs = append(errs, fmt.Errorf("%w: %s redirects to relative path %q", ErrInvalidTable, label, r.Redirect))
		}

		if r.Name != "" {
			if prev, ok := names[r.Name]; ok {
				errs = append(errs, fmt.Errorf("%w: %s reuses name %q from route %d", ErrInvalidTable, label, r.Name, prev))
			} else {
				names[r.Name] = i
			}
		}

		canon := p.canonical()
		switch prev, dup := seen[canon]; {
		case catchAll >= 0:
			errs = append(errs, fmt.Errorf("%w: %w: %s is shadowed by catch-all route %d",
				ErrInvalidTable, ErrUnreachableRoute, label, catchAll))
		case dup:
			errs = append(errs, fmt.Errorf("%w: %w: %s is shadowed by route %d",
				ErrInvalidTable, ErrUnreachableRoute, label, prev))
		default:
			seen[canon] = i
		}
		if catchAll < 0 && p.catchAll() {
			catchAll = i
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return t.validateRedirects()
}

// validateRedirects follows every redirect so cycles and dangling targets
// are caught at startup rather than on the first request.
func (t Table) validateRedirects() error {
	res, err := NewResolver(t)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	var errs []error
	for i, r := range t.routes {
		if !r.IsRedirect() {
			continue
		}
		if _, err := res.Resolve(r.Path); err != nil {
			errs = append(errs, fmt.Errorf("%w: route %d (%s): %w", ErrInvalidTable, i, r.Path, err))
		}
	}
	return errors.Join(errs...)
}
