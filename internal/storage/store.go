// Package storage persists the task list to a JSON file. Every
// mutation is a whole-file rewrite: load all, modify in memory, save
// all. There is no partial-update API.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/dhalman/todo/internal/domain"
)

// Store reads and writes the task file at a fixed path.
type Store struct {
	path string
}

// New creates a store bound to the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full task list. A missing file is not an error: it
// yields an empty list. A file that exists but does not parse or does
// not match the task schema yields a *domain.StorageError.
func (s *Store) Load() ([]domain.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Task{}, nil
		}
		return nil, &domain.StorageError{Op: "load", Path: s.path, Err: err}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.StorageError{Op: "load", Path: s.path, Err: fmt.Errorf("malformed JSON: %w", err)}
	}
	if err := taskFileSchema.Validate(doc); err != nil {
		return nil, &domain.StorageError{Op: "load", Path: s.path, Err: err}
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &domain.StorageError{Op: "load", Path: s.path, Err: err}
	}
	return tasks, nil
}

// Save serializes the full task list, overwriting the file. The file is
// written with two-space indentation and a trailing newline.
func (s *Store) Save(tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "save", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &domain.StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// NextID returns the next sequential numeric task ID: one past the
// highest numeric ID in the list. Non-numeric IDs are skipped.
func NextID(tasks []domain.Task) string {
	highest := 0
	for _, t := range tasks {
		n, err := strconv.Atoi(t.ID)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}
