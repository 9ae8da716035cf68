package domain

import (
	"sort"
	"strings"
	"time"
)

// SortField represents a field to sort by
type SortField string

const (
	SortByTitle    SortField = "title"
	SortByPriority SortField = "priority"
	SortByDue      SortField = "due"
	SortByCreated  SortField = "created"
)

// ParseSortField returns the sort field for a CLI flag value.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByTitle, SortByPriority, SortByDue, SortByCreated:
		return SortField(s), nil
	default:
		return "", &ValidationError{Field: "sort", Message: "must be one of: title, priority, due, created"}
	}
}

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// ParseSortOrder returns the sort order for a CLI flag value.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "asc", "":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	default:
		return SortAsc, &ValidationError{Field: "order", Message: "must be asc or desc"}
	}
}

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction.
// If field is different, sets new field with ascending order.
// If field is same, toggles between ascending and descending.
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply returns a sorted copy of the task list. The input is never
// mutated. Tasks without a due date sort after all dated tasks
// regardless of direction, and ties break by creation time ascending.
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	// Make a copy to avoid modifying the input slice
	result := make([]Task, len(tasks))
	copy(result, tasks)

	sort.SliceStable(result, func(i, j int) bool {
		c := s.compare(result[i], result[j])
		if c != 0 {
			return c < 0
		}
		return result[i].Created.Before(result[j].Created)
	})

	return result
}

// compare orders a before b when negative. Direction applies to the
// field comparison only, never to the missing-due-date rule or the
// creation-time tie break.
func (s *Sort) compare(a, b Task) int {
	var c int
	switch s.Field {
	case SortByTitle:
		c = strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))

	case SortByPriority:
		c = a.Priority.Rank() - b.Priority.Rank()

	case SortByCreated:
		c = compareTimes(a.Created, b.Created)

	case SortByDue:
		switch {
		case a.Due == nil && b.Due == nil:
			return 0
		case a.Due == nil:
			return 1
		case b.Due == nil:
			return -1
		}
		c = compareTimes(*a.Due, *b.Due)
	}

	if s.Order == SortDesc {
		c = -c
	}
	return c
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
