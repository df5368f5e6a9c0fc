package todo

// Patch lists the fields of a partial update. A nil field is left as it is.
type Patch struct {
	Text        *string
	Done        *bool
	DisplayDone *bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Text == nil && p.Done == nil && p.DisplayDone == nil
}

// Apply returns a copy of t with the set fields of p written over it.
func (p Patch) Apply(t *Todo) Todo {
	next := t.Clone()
	if p.Text != nil {
		next.Text = *p.Text
	}
	if p.Done != nil {
		next.Done = *p.Done
	}
	if p.DisplayDone != nil {
		v := *p.DisplayDone
		next.DisplayDone = &v
	}
	return next
}
