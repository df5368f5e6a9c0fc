package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/domain/route"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// Shell is the part of every page that does not depend on the view.
type Shell struct {
	Title   string
	MountID string
}

// pageData is what the layout and view templates render.
type pageData struct {
	Shell
	View   route.View
	Path   string
	Params map[string]string
	Todos  []dto.TodoResponse
}

// ViewHandler renders the resolved view for any path not claimed by the API.
type ViewHandler struct {
	nav   ports.NavigationService
	shell Shell
	views map[route.View]*template.Template
}

// NewViewHandler parses the layout together with each view template.
func NewViewHandler(nav ports.NavigationService, shell Shell) (*ViewHandler, error) {
	if shell.MountID == "" {
		shell.MountID = "app"
	}

	views := make(map[route.View]*template.Template, 3)
	for _, v := range []route.View{route.ViewHome, route.ViewAbout, route.ViewNotFound} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+string(v)+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s view: %w", v, err)
		}
		views[v] = tmpl
	}

	return &ViewHandler{nav: nav, shell: shell, views: views}, nil
}

// Serve handles GET /*. A path that resolved through a redirect answers 302
// with the final path so the address bar matches the rendered view.
func (h *ViewHandler) Serve(w http.ResponseWriter, r *http.Request) {
	page, err := h.nav.Navigate(r.Context(), r.URL.Path)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res := page.Resolution
	if res.Redirected() {
		target := res.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	tmpl, ok := h.views[res.View]
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("no template for view %q", res.View))
		return
	}

	data := pageData{
		Shell:  h.shell,
		View:   res.View,
		Path:   res.Path,
		Params: res.Params,
	}
	if page.Todos != nil {
		data.Todos = dto.ToTodoListResponse(page.Todos).Todos
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("rendering %s view: %w", res.View, err))
		return
	}

	status := http.StatusOK
	if res.View == route.ViewNotFound {
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(r.Context(), "failed to write view", slog.Any("error", err))
	}
}
