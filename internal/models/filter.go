package models

// Filter selects which tasks a view shows. It is a transient view
// selector and is never persisted.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps a query-string value to a Filter.
// Unknown values fall back to FilterAll.
func ParseFilter(s string) Filter {
	switch s {
	case "active":
		return FilterActive
	case "completed":
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Match reports whether the task belongs to the filtered view.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
