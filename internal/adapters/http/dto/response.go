// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-app/internal/domain/route"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// TodoResponse is a single todo in HTTP responses. Field names follow the
// todo record contract.
type TodoResponse struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	Done        bool   `json:"done"`
	DisplayDone *bool  `json:"displayDone,omitempty"`
}

// TodoListResponse is a list of todos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoResponse converts a domain Todo to its response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	c := t.Clone()
	return TodoResponse{
		ID:          c.ID,
		Text:        c.Text,
		Done:        c.Done,
		DisplayDone: c.DisplayDone,
	}
}

// ToTodoListResponse converts a slice of todos to a list response.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}

// BulkDoneResponse is the result of POST /api/v1/todos/done. It includes
// both successful updates and per-item errors.
type BulkDoneResponse struct {
	Updated   []TodoResponse  `json:"updated"`
	Errors    []BulkErrorItem `json:"errors"`
	Total     int             `json:"total"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}

// BulkErrorItem is a single failed update within a bulk operation.
type BulkErrorItem struct {
	TodoID  int64  `json:"todo_id"`
	Message string `json:"message"`
}

// ToBulkDoneResponse converts a ports.BulkResult to its response DTO.
func ToBulkDoneResponse(result *ports.BulkResult) BulkDoneResponse {
	updated := make([]TodoResponse, len(result.Updated))
	for i := range result.Updated {
		updated[i] = ToTodoResponse(&result.Updated[i])
	}

	errs := make([]BulkErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkErrorItem{
			TodoID:  e.TodoID,
			Message: e.Err.Error(),
		}
	}

	return BulkDoneResponse{
		Updated:   updated,
		Errors:    errs,
		Total:     len(result.Updated) + len(result.Errors),
		Succeeded: len(result.Updated),
		Failed:    len(result.Errors),
	}
}

// RouteResponse describes one route table entry.
type RouteResponse struct {
	Path     string `json:"path"`
	Name     string `json:"name,omitempty"`
	View     string `json:"view,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// RouteListResponse is the route table in declaration order.
type RouteListResponse struct {
	Routes []RouteResponse `json:"routes"`
	Count  int             `json:"count"`
}

// ToRouteListResponse converts route table entries to a list response.
func ToRouteListResponse(routes []route.Route) RouteListResponse {
	items := make([]RouteResponse, len(routes))
	for i, r := range routes {
		items[i] = RouteResponse{
			Path:     r.Path,
			Name:     r.Name,
			View:     string(r.View),
			Redirect: r.Redirect,
		}
	}
	return RouteListResponse{Routes: items, Count: len(items)}
}

// ResolutionResponse is the outcome of resolving one path.
type ResolutionResponse struct {
	Requested      string            `json:"requested"`
	Path           string            `json:"path"`
	View           string            `json:"view"`
	RouteName      string            `json:"route_name,omitempty"`
	Params         map[string]string `json:"params"`
	RedirectedFrom []string          `json:"redirected_from,omitempty"`
	Redirected     bool              `json:"redirected"`
}

// ToResolutionResponse converts a route.Resolution to its response DTO.
func ToResolutionResponse(requested string, res route.Resolution) ResolutionResponse {
	params := res.Params
	if params == nil {
		params = map[string]string{}
	}
	return ResolutionResponse{
		Requested:      requested,
		Path:           res.Path,
		View:           string(res.View),
		RouteName:      res.RouteName,
		Params:         params,
		RedirectedFrom: res.RedirectedFrom,
		Redirected:     res.Redirected(),
	}
}
