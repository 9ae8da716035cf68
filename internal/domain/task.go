// Package domain contains the core task types, validation, filtering,
// sorting, and search logic.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item. The JSON field names match the on-disk
// format and must not change.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Due         *time.Time `json:"due,omitempty"`
	Tags        []string   `json:"tags"`
	Created     time.Time  `json:"created"`
	Updated     time.Time  `json:"updated"`
	Subtasks    []Subtask  `json:"subtasks"`
}

// Subtask is a checklist item owned by exactly one task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Status represents task status
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the severity rank used for ordering (low < medium < high).
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// Valid reports whether the priority is a known value.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Validation limits carried over from the original file format.
const (
	maxTitleLen        = 200
	maxTags            = 10
	maxTagLen          = 50
	maxSubtasks        = 50
	maxSubtaskTitleLen = 100
)

// NewTask creates an active medium-priority task with the given ID and title.
func NewTask(id, title string) Task {
	now := time.Now()
	return Task{
		ID:       id,
		Title:    title,
		Status:   StatusActive,
		Priority: PriorityMedium,
		Tags:     []string{},
		Created:  now,
		Updated:  now,
		Subtasks: []Subtask{},
	}
}

// Validate checks the task's invariants and returns a *ValidationError
// describing the first violation found.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Message: "must be a non-empty string"}
	}
	if len(t.Title) > maxTitleLen {
		return &ValidationError{Field: "title", Message: "must be 200 characters or less"}
	}
	if !t.Status.Valid() {
		return &ValidationError{Field: "status", Message: "must be one of: active, completed"}
	}
	if !t.Priority.Valid() {
		return &ValidationError{Field: "priority", Message: "must be one of: low, medium, high"}
	}
	if len(t.Tags) > maxTags {
		return &ValidationError{Field: "tags", Message: "maximum 10 tags per task"}
	}
	for _, tag := range t.Tags {
		if len(tag) > maxTagLen {
			return &ValidationError{Field: "tags", Message: "each tag must be 50 characters or less"}
		}
	}
	if len(t.Subtasks) > maxSubtasks {
		return &ValidationError{Field: "subtasks", Message: "maximum 50 subtasks per task"}
	}
	for i := range t.Subtasks {
		if err := t.Subtasks[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the subtask's invariants.
func (s *Subtask) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return &ValidationError{Field: "subtask title", Message: "must be a non-empty string"}
	}
	if len(s.Title) > maxSubtaskTitleLen {
		return &ValidationError{Field: "subtask title", Message: "must be 100 characters or less"}
	}
	return nil
}

// Complete marks the task completed and touches the updated timestamp.
func (t *Task) Complete() {
	t.Status = StatusCompleted
	t.Touch()
}

// Touch updates the modification timestamp.
func (t *Task) Touch() {
	t.Updated = time.Now()
}

// AddSubtask appends a new subtask with a generated ID and returns it.
func (t *Task) AddSubtask(title string) (Subtask, error) {
	if len(t.Subtasks) >= maxSubtasks {
		return Subtask{}, &ValidationError{Field: "subtasks", Message: "maximum 50 subtasks per task"}
	}
	st := Subtask{
		ID:    uuid.NewString(),
		Title: title,
	}
	if err := st.Validate(); err != nil {
		return Subtask{}, err
	}
	t.Subtasks = append(t.Subtasks, st)
	t.Touch()
	return st, nil
}

// CompleteSubtask marks the subtask with the given ID completed.
func (t *Task) CompleteSubtask(subtaskID string) error {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks[i].Completed = true
			t.Touch()
			return nil
		}
	}
	return &ValidationError{Field: "subtask id", Message: "unknown subtask: " + subtaskID, Err: ErrNotFound}
}

// SubtaskProgress returns how many subtasks are completed out of the total.
func (t *Task) SubtaskProgress() (completed, total int) {
	for _, st := range t.Subtasks {
		if st.Completed {
			completed++
		}
	}
	return completed, len(t.Subtasks)
}

// Find returns the index of the task with the given ID.
func Find(tasks []Task, id string) (int, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			return i, nil
		}
	}
	return -1, &ValidationError{Field: "id", Message: "unknown task: " + id, Err: ErrNotFound}
}

// Remove deletes the task with the given ID and returns the shortened
// list. The task's subtasks go with it.
func Remove(tasks []Task, id string) ([]Task, error) {
	i, err := Find(tasks, id)
	if err != nil {
		return tasks, err
	}
	return append(tasks[:i], tasks[i+1:]...), nil
}
