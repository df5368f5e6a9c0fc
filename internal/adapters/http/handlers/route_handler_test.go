package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-app/internal/domain/route"
	"github.com/jsamuelsen11/todo-app/mocks"
)

func TestListRoutes(t *testing.T) {
	t.Parallel()

	nav := mocks.NewMockNavigationService(t)
	nav.EXPECT().Routes().Return(route.Default().Routes())
	h := handlers.NewRouteHandler(nav)

	rec := httptest.NewRecorder()
	h.ListRoutes(rec, httptest.NewRequest(http.MethodGet, "/api/v1/routes", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.RouteListResponse](t, rec)
	if resp.Count != 4 || resp.Routes[0].Path != "/" || resp.Routes[3].Name != route.NotFoundName {
		t.Errorf("resp = %+v, want the default table", resp)
	}
}

func TestResolveRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setup      func(nav *mocks.MockNavigationService)
		wantStatus int
		wantView   string
	}{
		{
			name:  "redirect is followed",
			query: "?path=/home",
			setup: func(nav *mocks.MockNavigationService) {
				nav.EXPECT().Resolve(mock.Anything, "/home").Return(route.Resolution{
					Path: "/", View: route.ViewHome, RedirectedFrom: []string{"/home"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantView:   "home",
		},
		{
			name:       "missing path",
			query:      "",
			setup:      func(*mocks.MockNavigationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "redirect loop",
			query: "?path=/a",
			setup: func(nav *mocks.MockNavigationService) {
				nav.EXPECT().Resolve(mock.Anything, "/a").
					Return(route.Resolution{}, fmt.Errorf("%w: /a -> /b -> /a", route.ErrRedirectLoop))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "no route",
			query: "?path=/x",
			setup: func(nav *mocks.MockNavigationService) {
				nav.EXPECT().Resolve(mock.Anything, "/x").Return(route.Resolution{}, route.ErrNoRoute)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nav := mocks.NewMockNavigationService(t)
			tt.setup(nav)
			h := handlers.NewRouteHandler(nav)

			rec := httptest.NewRecorder()
			h.ResolveRoute(rec, httptest.NewRequest(http.MethodGet, "/api/v1/routes/resolve"+tt.query, nil))

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantView == "" {
				return
			}
			resp := decodeJSON[dto.ResolutionResponse](t, rec)
			if resp.View != tt.wantView || !resp.Redirected {
				t.Errorf("resp = %+v, want view %q via redirect", resp, tt.wantView)
			}
		})
	}
}
