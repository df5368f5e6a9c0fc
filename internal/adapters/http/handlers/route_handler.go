package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/domain"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// RouteHandler exposes the view route table as JSON.
type RouteHandler struct {
	nav ports.NavigationService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(nav ports.NavigationService) *RouteHandler {
	return &RouteHandler{nav: nav}
}

// ListRoutes handles GET /api/v1/routes.
func (h *RouteHandler) ListRoutes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToRouteListResponse(h.nav.Routes()))
}

// ResolveRoute handles GET /api/v1/routes/resolve?path=.
func (h *RouteHandler) ResolveRoute(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"path": domain.MsgRequired},
		})
		return
	}

	res, err := h.nav.Resolve(r.Context(), path)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToResolutionResponse(path, res))
}
