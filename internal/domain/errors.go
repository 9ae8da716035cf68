package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound = errors.New("not found")
)

// ValidationError reports invalid user input: an empty title, an unknown
// priority or status, a bad date, or a missing task/subtask ID.
type ValidationError struct {
	Field   string // Which field was invalid: "title", "priority", etc.
	Message string // Human-readable context
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError reports a failure reading or writing the task file.
type StorageError struct {
	Op   string // Operation: "load", "save"
	Path string // Task file path
	Err  error  // Underlying error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
