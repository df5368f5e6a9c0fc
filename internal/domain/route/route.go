// Package route holds the declarative view route table and the resolver
// that maps a URL path onto it.
//
// A table is an ordered list of bindings. Resolution walks the table in
// declaration order and the first structural match wins:
//
//	r, _ := route.NewResolver(route.Default())
//	res, err := r.Resolve("/home") // redirected to "/", View == route.ViewHome
//
// Patterns are made of literal segments, "{name}" (exactly one segment) and
// "{name...}" (the rest of the path, last segment only).
package route

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrInvalidTable     = errors.New("invalid route table")
	ErrUnreachableRoute = errors.New("unreachable route")
	ErrInvalidPattern   = errors.New("invalid route pattern")
	ErrNoRoute          = errors.New("no route matched")
	ErrRedirectLoop     = errors.New("redirect loop")
)

// View identifies a page the view layer knows how to render.
type View string

const (
	ViewHome     View = "home"
	ViewAbout    View = "about"
	ViewNotFound View = "not-found"
)

// String implements fmt.Stringer.
func (v View) String() string {
	return string(v)
}

// Route binds a path pattern to either a view or a redirect target.
// Exactly one of View and Redirect must be set.
type Route struct {
	Path     string
	View     View
	Redirect string
	Name     string
}

// IsRedirect reports whether matching this route restarts resolution.
func (r Route) IsRedirect() bool {
	return r.Redirect != ""
}

// Destination describes where the route leads, for listings and logs.
func (r Route) Destination() string {
	if r.IsRedirect() {
		return "redirect " + r.Redirect
	}
	return "view " + r.View.String()
}

type segment struct {
	literal string
	param   string
	rest    bool
}

// pattern is a compiled Route.Path.
type pattern struct {
	raw  string
	segs []segment
}

func parsePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, raw)
	}

	parts := splitPath(raw)
	p := pattern{raw: raw, segs: make([]segment, 0, len(parts))}
	for i, part := range parts {
		if !strings.HasPrefix(part, "{") {
			if strings.ContainsAny(part, "{}") {
				return pattern{}, fmt.Errorf("%w: %q has a stray brace in %q", ErrInvalidPattern, raw, part)
			}
			p.segs = append(p.segs, segment{literal: part})
			continue
		}

		if !strings.HasSuffix(part, "}") {
			return pattern{}, fmt.Errorf("%w: %q has an unterminated parameter %q", ErrInvalidPattern, raw, part)
		}
		name := part[1 : len(part)-1]
		rest := strings.HasSuffix(name, "...")
		name = strings.TrimSuffix(name, "...")

		if name == "" || strings.ContainsAny(name, "{}.") {
			return pattern{}, fmt.Errorf("%w: %q has a bad parameter name %q", ErrInvalidPattern, raw, part)
		}
		if rest && i != len(parts)-1 {
			return pattern{}, fmt.Errorf("%w: %q: rest parameter %q must be last", ErrInvalidPattern, raw, name)
		}
		p.segs = append(p.segs, segment{param: name, rest: rest})
	}
	return p, nil
}

// catchAll reports whether the pattern matches every path.
func (p pattern) catchAll() bool {
	return len(p.segs) == 1 && p.segs[0].rest
}

// canonical renders the pattern with parameter names erased so two patterns
// matching the same paths compare equal.
func (p pattern) canonical() string {
	var b strings.Builder
	for _, s := range p.segs {
		b.WriteByte('/')
		switch {
		case s.rest:
			b.WriteString("{...}")
		case s.param != "":
			b.WriteString("{}")
		default:
			b.WriteString(strings.ToLower(s.literal))
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// match tests the pattern against already-split path segments. Static
// segments compare case-insensitively.
func (p pattern) match(parts []string) (map[string]string, bool) {
	var params map[string]string
	for i, s := range p.segs {
		if s.rest {
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[s.param] = strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		if s.param != "" {
			if params == nil {
				params = make(map[string]string, len(p.segs))
			}
			params[s.param] = parts[i]
			continue
		}
		if !strings.EqualFold(s.literal, parts[i]) {
			return nil, false
		}
	}
	if len(parts) != len(p.segs) {
		return nil, false
	}
	return params, true
}

// splitPath drops empty segments, which collapses repeated and trailing
// slashes.
func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	parts := raw[:0]
	for _, s := range raw {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

// normalize strips query and fragment and returns the cleaned path with its
// segments.
func normalize(path string) (string, []string) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := splitPath(path)
	return "/" + strings.Join(parts, "/"), parts
}
