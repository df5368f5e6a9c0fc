package route_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/todo-app/internal/domain/route"
)

func newResolver(t *testing.T, table route.Table, opts ...route.Option) *route.Resolver {
	t.Helper()
	r, err := route.NewResolver(table, opts...)
	if err != nil {
		t.Fatalf("NewResolver() error: %v", err)
	}
	return r
}

func TestResolve_DefaultTable(t *testing.T) {
	t.Parallel()

	r := newResolver(t, route.Default())

	tests := []struct {
		name       string
		path       string
		wantPath   string
		wantView   route.View
		wantName   string
		wantParams map[string]string
		wantFrom   []string
	}{
		{
			name:     "root renders home",
			path:     "/",
			wantPath: "/",
			wantView: route.ViewHome,
		},
		{
			name:     "home redirects to root",
			path:     "/home",
			wantPath: "/",
			wantView: route.ViewHome,
			wantFrom: []string{"/home"},
		},
		{
			name:     "about",
			path:     "/about",
			wantPath: "/about",
			wantView: route.ViewAbout,
		},
		{
			name:       "unknown single segment",
			path:       "/xyz",
			wantPath:   "/xyz",
			wantView:   route.ViewNotFound,
			wantName:   route.NotFoundName,
			wantParams: map[string]string{"pathMatch": "xyz"},
		},
		{
			name:       "unknown nested path",
			path:       "/a/b/c",
			wantPath:   "/a/b/c",
			wantView:   route.ViewNotFound,
			wantName:   route.NotFoundName,
			wantParams: map[string]string{"pathMatch": "a/b/c"},
		},
		{
			name:       "about prefix is not about",
			path:       "/about/team",
			wantPath:   "/about/team",
			wantView:   route.ViewNotFound,
			wantName:   route.NotFoundName,
			wantParams: map[string]string{"pathMatch": "about/team"},
		},
		{
			name:     "empty path is root",
			path:     "",
			wantPath: "/",
			wantView: route.ViewHome,
		},
		{
			name:     "trailing slash ignored",
			path:     "/about/",
			wantPath: "/about",
			wantView: route.ViewAbout,
		},
		{
			name:     "static segments are case-insensitive",
			path:     "/ABOUT",
			wantPath: "/ABOUT",
			wantView: route.ViewAbout,
		},
		{
			name:     "repeated slashes collapse",
			path:     "//about",
			wantPath: "/about",
			wantView: route.ViewAbout,
		},
		{
			name:     "query and fragment stripped",
			path:     "/about?tab=team#top",
			wantPath: "/about",
			wantView: route.ViewAbout,
		},
		{
			name:     "home redirect tolerates trailing slash",
			path:     "/home/",
			wantPath: "/",
			wantView: route.ViewHome,
			wantFrom: []string{"/home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Resolve(tt.path)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.path, err)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
			if got.View != tt.wantView {
				t.Errorf("View = %q, want %q", got.View, tt.wantView)
			}
			if got.RouteName != tt.wantName {
				t.Errorf("RouteName = %q, want %q", got.RouteName, tt.wantName)
			}
			if len(got.Params) != len(tt.wantParams) {
				t.Errorf("Params = %v, want %v", got.Params, tt.wantParams)
			}
			for k, v := range tt.wantParams {
				if got.Params[k] != v {
					t.Errorf("Params[%q] = %q, want %q", k, got.Params[k], v)
				}
			}
			if !slices.Equal(got.RedirectedFrom, tt.wantFrom) {
				t.Errorf("RedirectedFrom = %v, want %v", got.RedirectedFrom, tt.wantFrom)
			}
			if got.Redirected() != (len(tt.wantFrom) > 0) {
				t.Errorf("Redirected() = %v, want %v", got.Redirected(), len(tt.wantFrom) > 0)
			}
		})
	}
}

func TestResolve_ParamsNeverNil(t *testing.T) {
	t.Parallel()

	r := newResolver(t, route.Default())

	got, err := r.Resolve("/about")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got.Params == nil {
		t.Error("Params = nil, want empty map")
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	t.Parallel()

	table := route.NewTable(
		route.Route{Path: "/todos/{id}", View: "todo"},
		route.Route{Path: "/todos/new", View: "new-todo"},
		route.Route{Path: "/{rest...}", View: route.ViewNotFound},
	)
	r := newResolver(t, table)

	got, err := r.Resolve("/todos/new")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got.View != "todo" {
		t.Errorf("View = %q, want %q (first declared match)", got.View, "todo")
	}
	if got.Params["id"] != "new" {
		t.Errorf("Params[id] = %q, want %q", got.Params["id"], "new")
	}
}

func TestResolve_SingleSegmentParam(t *testing.T) {
	t.Parallel()

	table := route.NewTable(
		route.Route{Path: "/todos/{id}", View: "todo"},
		route.Route{Path: "/{rest...}", View: route.ViewNotFound},
	)
	r := newResolver(t, table)

	tests := []struct {
		path string
		want route.View
	}{
		{path: "/todos/5", want: "todo"},
		{path: "/todos", want: route.ViewNotFound},
		{path: "/todos/5/edit", want: route.ViewNotFound},
	}

	for _, tt := range tests {
		got, err := r.Resolve(tt.path)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", tt.path, err)
		}
		if got.View != tt.want {
			t.Errorf("Resolve(%q).View = %q, want %q", tt.path, got.View, tt.want)
		}
	}
}

func TestResolve_WildcardBeforeAboutShadowsIt(t *testing.T) {
	t.Parallel()

	routes := route.Default().Routes()
	// Move the catch-all from last to just before /about.
	reordered := []route.Route{routes[0], routes[1], routes[3], routes[2]}
	r := newResolver(t, route.NewTable(reordered...))

	got, err := r.Resolve("/about")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got.View != route.ViewNotFound {
		t.Errorf("View = %q, want %q once the wildcard precedes /about", got.View, route.ViewNotFound)
	}
}

func TestResolve_RedirectCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		table route.Table
		path  string
	}{
		{
			name: "two redirects pointing at each other",
			table: route.NewTable(
				route.Route{Path: "/a", Redirect: "/b"},
				route.Route{Path: "/b", Redirect: "/a"},
				route.Route{Path: "/{rest...}", View: route.ViewNotFound},
			),
			path: "/a",
		},
		{
			name: "self redirect",
			table: route.NewTable(
				route.Route{Path: "/loop", Redirect: "/loop/"},
				route.Route{Path: "/{rest...}", View: route.ViewNotFound},
			),
			path: "/loop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newResolver(t, tt.table)
			_, err := r.Resolve(tt.path)
			if !errors.Is(err, route.ErrRedirectLoop) {
				t.Errorf("Resolve(%q) error = %v, want ErrRedirectLoop", tt.path, err)
			}
		})
	}
}

func TestResolve_MaxRedirects(t *testing.T) {
	t.Parallel()

	table := route.NewTable(
		route.Route{Path: "/1", Redirect: "/2"},
		route.Route{Path: "/2", Redirect: "/3"},
		route.Route{Path: "/3", Redirect: "/4"},
		route.Route{Path: "/4", View: route.ViewHome},
	)

	if _, err := newResolver(t, table, route.WithMaxRedirects(3)).Resolve("/1"); err != nil {
		t.Errorf("Resolve() with limit 3 error: %v", err)
	}

	_, err := newResolver(t, table, route.WithMaxRedirects(2)).Resolve("/1")
	if !errors.Is(err, route.ErrRedirectLoop) {
		t.Errorf("Resolve() with limit 2 error = %v, want ErrRedirectLoop", err)
	}
}

func TestResolve_NoRoute(t *testing.T) {
	t.Parallel()

	r := newResolver(t, route.NewTable(route.Route{Path: "/", View: route.ViewHome}))

	_, err := r.Resolve("/missing")
	if !errors.Is(err, route.ErrNoRoute) {
		t.Errorf("Resolve() error = %v, want ErrNoRoute", err)
	}
}

func TestNewResolver_InvalidPattern(t *testing.T) {
	t.Parallel()

	patterns := []string{
		"about",
		"/{rest...}/tail",
		"/{}",
		"/a{b",
		"/{open",
		"/{a.b}",
	}

	for _, p := range patterns {
		_, err := route.NewResolver(route.NewTable(route.Route{Path: p, View: route.ViewHome}))
		if !errors.Is(err, route.ErrInvalidPattern) {
			t.Errorf("NewResolver(%q) error = %v, want ErrInvalidPattern", p, err)
		}
	}
}

func TestResolve_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := newResolver(t, route.Default())
	paths := []string{"/", "/home", "/about", "/xyz", "/a/b/c"}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if _, err := r.Resolve(p); err != nil {
				t.Errorf("Resolve(%q) error: %v", p, err)
			}
		}(paths[i%len(paths)])
	}
	wg.Wait()
}
