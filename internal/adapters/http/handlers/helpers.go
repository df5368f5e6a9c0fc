package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/domain"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a positive integer"},
		}
	}
	return id, nil
}

// parseTodoFilter reads the optional ?done= query parameter.
func parseTodoFilter(r *http.Request) (todo.Filter, error) {
	var filter todo.Filter

	if raw := r.URL.Query().Get("done"); raw != "" {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			return todo.Filter{}, &domain.ValidationError{
				Fields: map[string]string{"done": "must be true or false"},
			}
		}
		filter.Done = &done
	}
	return filter, nil
}

// mapCreateTodoRequest converts a validated CreateTodoRequest DTO to a
// domain Todo.
func mapCreateTodoRequest(req *dto.CreateTodoRequest) *todo.Todo {
	return &todo.Todo{
		Text:        req.Text,
		Done:        *req.Done,
		DisplayDone: req.DisplayDone,
	}
}

// mapUpdateTodoRequest converts an UpdateTodoRequest DTO to a partial update.
func mapUpdateTodoRequest(req *dto.UpdateTodoRequest) ports.TodoPatch {
	return ports.TodoPatch{
		Text:        req.Text,
		Done:        req.Done,
		DisplayDone: req.DisplayDone,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeTodoCreate decodes and validates a CreateTodoRequest, returning the
// mapped domain Todo. Returns nil and writes an error response on failure.
func decodeTodoCreate(w http.ResponseWriter, r *http.Request) *todo.Todo {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return nil
	}
	return mapCreateTodoRequest(&req)
}

// decodeTodoUpdate decodes and validates an UpdateTodoRequest. The bool is
// false when an error response has already been written.
func decodeTodoUpdate(w http.ResponseWriter, r *http.Request) (ports.TodoPatch, bool) {
	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return ports.TodoPatch{}, false
	}
	return mapUpdateTodoRequest(&req), true
}
