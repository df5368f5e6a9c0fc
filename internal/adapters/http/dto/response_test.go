package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/domain"
	"github.com/jsamuelsen11/todo-app/internal/domain/route"
	"github.com/jsamuelsen11/todo-app/internal/domain/todo"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		todo     todo.Todo
		wantJSON string
	}{
		{
			name:     "omits displayDone when unset",
			todo:     todo.Todo{ID: 1, Text: "Buy groceries"},
			wantJSON: `{"id":1,"text":"Buy groceries","done":false}`,
		},
		{
			name:     "keeps displayDone independent of done",
			todo:     todo.Todo{ID: 2, Text: "Walk", Done: true, DisplayDone: boolPtr(false)},
			wantJSON: `{"id":2,"text":"Walk","done":true,"displayDone":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(dto.ToTodoResponse(&tt.todo))
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.wantJSON {
				t.Errorf("JSON = %s, want %s", got, tt.wantJSON)
			}
		})
	}
}

func TestToTodoResponse_DoesNotAlias(t *testing.T) {
	t.Parallel()

	src := todo.Todo{ID: 1, Text: "a", DisplayDone: boolPtr(true)}
	resp := dto.ToTodoResponse(&src)
	*src.DisplayDone = false

	if resp.DisplayDone == nil || !*resp.DisplayDone {
		t.Error("response DisplayDone changed with the source todo")
	}
}

func TestToTodoListResponse(t *testing.T) {
	t.Parallel()

	t.Run("counts items", func(t *testing.T) {
		t.Parallel()
		got := dto.ToTodoListResponse([]todo.Todo{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}})
		if got.Count != 2 || len(got.Todos) != 2 || got.Todos[1].ID != 2 {
			t.Errorf("ToTodoListResponse() = %+v", got)
		}
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(dto.ToTodoListResponse(nil))
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}
		if !strings.Contains(string(b), `"todos":[]`) {
			t.Errorf("JSON = %s, want empty todos array", b)
		}
	})
}

func TestToBulkDoneResponse(t *testing.T) {
	t.Parallel()

	result := &ports.BulkResult{
		Updated: []todo.Todo{{ID: 1, Text: "a", Done: true}},
		Errors: []ports.BulkError{
			{TodoID: 2, Err: domain.ErrNotFound},
		},
	}

	got := dto.ToBulkDoneResponse(result)
	if got.Total != 2 || got.Succeeded != 1 || got.Failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", got.Total, got.Succeeded, got.Failed)
	}
	if got.Errors[0].TodoID != 2 || got.Errors[0].Message != "not found" {
		t.Errorf("Errors[0] = %+v", got.Errors[0])
	}
}

func TestToRouteListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToRouteListResponse(route.Default().Routes())
	if got.Count != 4 {
		t.Fatalf("Count = %d, want 4", got.Count)
	}
	if got.Routes[1].Path != "/home" || got.Routes[1].Redirect != "/" || got.Routes[1].View != "" {
		t.Errorf("Routes[1] = %+v, want /home redirecting to /", got.Routes[1])
	}
	if got.Routes[3].Name != route.NotFoundName {
		t.Errorf("Routes[3].Name = %q, want %q", got.Routes[3].Name, route.NotFoundName)
	}
}

func TestToResolutionResponse(t *testing.T) {
	t.Parallel()

	t.Run("redirected resolution", func(t *testing.T) {
		t.Parallel()
		res := route.Resolution{Path: "/", View: route.ViewHome, RedirectedFrom: []string{"/home"}}
		got := dto.ToResolutionResponse("/home", res)
		if !got.Redirected || got.View != "home" || got.Requested != "/home" {
			t.Errorf("ToResolutionResponse() = %+v", got)
		}
		if got.Params == nil {
			t.Error("Params = nil, want empty map")
		}
	})

	t.Run("wildcard params are kept", func(t *testing.T) {
		t.Parallel()
		res := route.Resolution{
			Path:      "/x/y",
			View:      route.ViewNotFound,
			RouteName: route.NotFoundName,
			Params:    map[string]string{"pathMatch": "x/y"},
		}
		got := dto.ToResolutionResponse("/x/y", res)
		if got.Redirected || got.Params["pathMatch"] != "x/y" {
			t.Errorf("ToResolutionResponse() = %+v", got)
		}
	})
}
