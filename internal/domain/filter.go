package domain

import (
	"strings"
	"time"
)

// DueBucket classifies a task's due date against the current date.
type DueBucket string

const (
	BucketOverdue  DueBucket = "overdue"
	BucketToday    DueBucket = "today"
	BucketUpcoming DueBucket = "upcoming"
	BucketNone     DueBucket = "none"
)

// ParseBucket returns the bucket for a CLI flag value.
func ParseBucket(s string) (DueBucket, error) {
	switch DueBucket(s) {
	case BucketOverdue, BucketToday, BucketUpcoming, BucketNone:
		return DueBucket(s), nil
	default:
		return "", &ValidationError{Field: "due", Message: "must be one of: overdue, today, upcoming, none"}
	}
}

// BucketOf classifies a task by comparing its due date to today at day
// granularity. The classification is purely positional: every task lands
// in exactly one bucket.
func BucketOf(t Task, today time.Time) DueBucket {
	if t.Due == nil {
		return BucketNone
	}
	due := dateOf(*t.Due)
	day := dateOf(today)
	switch {
	case due.Before(day):
		return BucketOverdue
	case due.After(day):
		return BucketUpcoming
	default:
		return BucketToday
	}
}

// dateOf truncates a timestamp to its calendar day in local time.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Filter represents task filtering state
type Filter struct {
	Status   map[Status]bool
	Priority map[Priority]bool
	Tags     []string
	Due      *DueBucket
	Query    string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Status:   make(map[Status]bool),
		Priority: make(map[Priority]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Status) > 0 ||
		len(f.Priority) > 0 ||
		len(f.Tags) > 0 ||
		f.Due != nil ||
		f.Query != ""
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters.
// Uses AND logic between filter types, OR logic within filter types.
func (f *Filter) Matches(t Task) bool {
	// Status filter (OR within)
	if len(f.Status) > 0 {
		if !f.Status[t.Status] {
			return false
		}
	}

	// Priority filter (OR within)
	if len(f.Priority) > 0 {
		if !f.Priority[t.Priority] {
			return false
		}
	}

	// Tag filter: the task's tag set must intersect the requested set
	if len(f.Tags) > 0 {
		if !intersects(t.Tags, f.Tags) {
			return false
		}
	}

	// Due-date bucket filter. Overdue additionally requires an active
	// task: a completed task due yesterday is not "overdue" work.
	if f.Due != nil {
		if BucketOf(t, time.Now()) != *f.Due {
			return false
		}
		if *f.Due == BucketOverdue && t.Status != StatusActive {
			return false
		}
	}

	// Free-text query (case-insensitive, matches title or description)
	if f.Query != "" {
		if !matchesQuery(t, f.Query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Status = make(map[Status]bool)
	f.Priority = make(map[Priority]bool)
	f.Tags = nil
	f.Due = nil
	f.Query = ""
}

// ToggleStatus toggles a status filter
func (f *Filter) ToggleStatus(s Status) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// TogglePriority toggles a priority filter
func (f *Filter) TogglePriority(p Priority) {
	if f.Priority[p] {
		delete(f.Priority, p)
	} else {
		f.Priority[p] = true
	}
}

// Search returns the tasks whose title or description contains the query
// as a case-insensitive substring. An empty query returns the input
// unchanged.
func Search(tasks []Task, query string) []Task {
	if strings.TrimSpace(query) == "" {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesQuery(task, query) {
			result = append(result, task)
		}
	}
	return result
}

func matchesQuery(t Task, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), q)
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
