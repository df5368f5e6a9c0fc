// Package todo defines the Todo record shared by the views, the JSON API and
// the stores.
package todo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-app/internal/domain"
)

// Todo is a single to-do item.
//
// DisplayDone is a UI-only flag. It is carried alongside Done but never
// derived from it.
type Todo struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	Done        bool   `json:"done"`
	DisplayDone *bool  `json:"displayDone,omitempty"`
}

// wireTodo mirrors Todo with pointer fields so absent keys can be told apart
// from zero values.
type wireTodo struct {
	ID          *int64  `json:"id"`
	Text        *string `json:"text"`
	Done        *bool   `json:"done"`
	DisplayDone *bool   `json:"displayDone"`
}

// UnmarshalJSON decodes a Todo and rejects records missing text, done or id
// with a *domain.ValidationError. A JSON null counts as missing.
func (t *Todo) UnmarshalJSON(data []byte) error {
	var w wireTodo
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding todo: %w", err)
	}

	fields := make(map[string]string)
	if w.ID == nil {
		fields["id"] = domain.MsgRequired
	}
	if w.Text == nil {
		fields["text"] = domain.MsgRequired
	}
	if w.Done == nil {
		fields["done"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	*t = Todo{
		ID:          *w.ID,
		Text:        *w.Text,
		Done:        *w.Done,
		DisplayDone: w.DisplayDone,
	}
	return nil
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. A zero ID is allowed for todos not yet stored.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if t.ID < 0 {
		fields["id"] = fmt.Sprintf("must not be negative, got %d", t.ID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Clone returns a deep copy so stores never share the DisplayDone pointer
// with callers.
func (t *Todo) Clone() Todo {
	c := *t
	if t.DisplayDone != nil {
		v := *t.DisplayDone
		c.DisplayDone = &v
	}
	return c
}
