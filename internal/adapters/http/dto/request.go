package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-app/internal/domain"
)

// CreateTodoRequest is the JSON body for POST /api/v1/todos. The server
// assigns the ID.
type CreateTodoRequest struct {
	Text        string `json:"text"`
	Done        *bool  `json:"done"`
	DisplayDone *bool  `json:"displayDone,omitempty"`
}

// Validate checks that the text and the done flag are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if r.Done == nil {
		fields["done"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTodoRequest is the JSON body for PATCH /api/v1/todos/{id}.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Text        *string `json:"text,omitempty"`
	Done        *bool   `json:"done,omitempty"`
	DisplayDone *bool   `json:"displayDone,omitempty"`
}

// Validate checks that at least one field is set and that a provided text
// is not blank.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Text == nil && r.Done == nil && r.DisplayDone == nil {
		fields["body"] = "must set at least one of text, done, displayDone"
	}
	if r.Text != nil && strings.TrimSpace(*r.Text) == "" {
		fields["text"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SetDoneRequest is the JSON body for POST /api/v1/todos/done.
type SetDoneRequest struct {
	IDs  []int64 `json:"ids"`
	Done *bool   `json:"done"`
}

// Validate checks that ids is non-empty with positive values and that done
// is present.
func (r *SetDoneRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.IDs) == 0 {
		fields["ids"] = domain.MsgMustNotEmpty
	}
	for _, id := range r.IDs {
		if id < 1 {
			fields["ids"] = fmt.Sprintf("must be positive, got %d", id)
			break
		}
	}
	if r.Done == nil {
		fields["done"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
