package todo

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Done *bool
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t *Todo) bool {
	if f.Done != nil && t.Done != *f.Done {
		return false
	}
	return true
}
