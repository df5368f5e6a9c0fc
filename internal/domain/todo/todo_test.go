package todo

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/todo-app/internal/domain"
)

func boolPtr(v bool) *bool { return &v }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestTodo_UnmarshalJSON_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want Todo
	}{
		{
			name: "required fields only",
			body: `{"text":"Buy milk","done":false,"id":1}`,
			want: Todo{ID: 1, Text: "Buy milk", Done: false},
		},
		{
			name: "with displayDone",
			body: `{"text":"Buy milk","done":false,"id":1,"displayDone":true}`,
			want: Todo{ID: 1, Text: "Buy milk", Done: false, DisplayDone: boolPtr(true)},
		},
		{
			name: "displayDone independent of done",
			body: `{"text":"Walk dog","done":true,"id":7,"displayDone":false}`,
			want: Todo{ID: 7, Text: "Walk dog", Done: true, DisplayDone: boolPtr(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got Todo
			if err := json.Unmarshal([]byte(tt.body), &got); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if got.ID != tt.want.ID || got.Text != tt.want.Text || got.Done != tt.want.Done {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			switch {
			case tt.want.DisplayDone == nil && got.DisplayDone != nil:
				t.Errorf("DisplayDone = %v, want nil", *got.DisplayDone)
			case tt.want.DisplayDone != nil && got.DisplayDone == nil:
				t.Errorf("DisplayDone = nil, want %v", *tt.want.DisplayDone)
			case tt.want.DisplayDone != nil && *got.DisplayDone != *tt.want.DisplayDone:
				t.Errorf("DisplayDone = %v, want %v", *got.DisplayDone, *tt.want.DisplayDone)
			}
		})
	}
}

func TestTodo_UnmarshalJSON_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing text", body: `{"done":false,"id":1}`, field: "text"},
		{name: "missing done", body: `{"text":"Buy milk","id":1}`, field: "done"},
		{name: "missing id", body: `{"text":"Buy milk","done":false}`, field: "id"},
		{name: "null text", body: `{"text":null,"done":false,"id":1}`, field: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got Todo
			err := json.Unmarshal([]byte(tt.body), &got)
			requireValidationField(t, err, tt.field)
		})
	}
}

func TestTodo_UnmarshalJSON_ReportsEveryMissingField(t *testing.T) {
	t.Parallel()

	var got Todo
	err := json.Unmarshal([]byte(`{"displayDone":true}`), &got)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("len(Fields) = %d, want 3: %v", len(verr.Fields), verr.Fields)
	}
}

func TestTodo_UnmarshalJSON_WrongType(t *testing.T) {
	t.Parallel()

	var got Todo
	err := json.Unmarshal([]byte(`{"text":"x","done":"no","id":1}`), &got)
	if err == nil {
		t.Fatal("Unmarshal() = nil, want error for string done")
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Errorf("type mismatch reported as validation error: %v", err)
	}
}

func TestTodo_MarshalJSON_OmitsNilDisplayDone(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Todo{ID: 1, Text: "Buy milk"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"id":1,"text":"Buy milk","done":false}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		todo  Todo
		field string
	}{
		{name: "valid", todo: Todo{ID: 1, Text: "Buy milk"}},
		{name: "unsaved todo", todo: Todo{Text: "Buy milk"}},
		{name: "blank text", todo: Todo{ID: 1, Text: "   "}, field: "text"},
		{name: "negative id", todo: Todo{ID: -1, Text: "Buy milk"}, field: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.todo.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.field)
		})
	}
}

func TestTodo_CloneCopiesDisplayDone(t *testing.T) {
	t.Parallel()

	orig := Todo{ID: 1, Text: "Buy milk", DisplayDone: boolPtr(true)}
	c := orig.Clone()
	*c.DisplayDone = false

	if !*orig.DisplayDone {
		t.Error("mutating clone changed original DisplayDone")
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	done := Todo{ID: 1, Text: "a", Done: true}
	open := Todo{ID: 2, Text: "b"}

	tests := []struct {
		name   string
		filter Filter
		todo   Todo
		want   bool
	}{
		{name: "zero filter matches done", filter: Filter{}, todo: done, want: true},
		{name: "zero filter matches open", filter: Filter{}, todo: open, want: true},
		{name: "done filter keeps done", filter: Filter{Done: boolPtr(true)}, todo: done, want: true},
		{name: "done filter drops open", filter: Filter{Done: boolPtr(true)}, todo: open, want: false},
		{name: "open filter drops done", filter: Filter{Done: boolPtr(false)}, todo: done, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.filter.Matches(&tt.todo); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
