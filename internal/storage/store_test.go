package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhalman/todo/internal/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"))
}

func fixtureTasks() []domain.Task {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return []domain.Task{
		{
			ID:       "1",
			Title:    "Write report",
			Status:   domain.StatusActive,
			Priority: domain.PriorityHigh,
			Due:      &due,
			Tags:     []string{"work"},
			Created:  created,
			Updated:  created,
			Subtasks: []domain.Subtask{
				{ID: "a3c1", Title: "Draft outline", Completed: true},
			},
		},
		{
			ID:          "2",
			Title:       "Groceries",
			Description: "milk, eggs",
			Status:      domain.StatusCompleted,
			Priority:    domain.PriorityLow,
			Tags:        []string{},
			Created:     created.Add(time.Hour),
			Updated:     created.Add(2 * time.Hour),
			Subtasks:    []domain.Subtask{},
		},
	}
}

func TestStore_Load_MissingFile(t *testing.T) {
	s := testStore(t)

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_RoundTrip(t *testing.T) {
	s := testStore(t)
	want := fixtureTasks()

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Write report", got[0].Title)
	assert.Equal(t, domain.StatusActive, got[0].Status)
	assert.Equal(t, domain.PriorityHigh, got[0].Priority)
	require.NotNil(t, got[0].Due)
	assert.True(t, got[0].Due.Equal(*want[0].Due))
	assert.Equal(t, []string{"work"}, got[0].Tags)
	assert.True(t, got[0].Created.Equal(want[0].Created))
	require.Len(t, got[0].Subtasks, 1)
	assert.Equal(t, "Draft outline", got[0].Subtasks[0].Title)
	assert.True(t, got[0].Subtasks[0].Completed)

	assert.Equal(t, "milk, eggs", got[1].Description)
	assert.Nil(t, got[1].Due)

	// Saving what was loaded reproduces the file byte for byte
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.NoError(t, s.Save(got))
	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_Save_NilList(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Save(nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestStore_Load_MalformedJSON(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	_, err := s.Load()
	require.Error(t, err)

	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "load", serr.Op)
}

func TestStore_Load_SchemaViolation(t *testing.T) {
	s := testStore(t)

	tests := []struct {
		name string
		body string
	}{
		{"not an array", `{"tasks": []}`},
		{"unknown status", `[{"id":"1","title":"x","status":"archived","priority":"low","created":"2025-03-01T09:00:00Z","updated":"2025-03-01T09:00:00Z"}]`},
		{"unknown priority", `[{"id":"1","title":"x","status":"active","priority":"urgent","created":"2025-03-01T09:00:00Z","updated":"2025-03-01T09:00:00Z"}]`},
		{"missing title", `[{"id":"1","status":"active","priority":"low","created":"2025-03-01T09:00:00Z","updated":"2025-03-01T09:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.body), 0644))

			_, err := s.Load()
			var serr *domain.StorageError
			require.ErrorAs(t, err, &serr)
		})
	}
}

func TestStore_Save_UnwritablePath(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", "tasks.json"))

	err := s.Save(fixtureTasks())
	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "save", serr.Op)
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		tasks []domain.Task
		want  string
	}{
		{"empty list", nil, "1"},
		{"sequential", []domain.Task{{ID: "1"}, {ID: "2"}}, "3"},
		{"gaps", []domain.Task{{ID: "1"}, {ID: "7"}}, "8"},
		{"skips non-numeric", []domain.Task{{ID: "abc"}, {ID: "3"}}, "4"},
		{"all non-numeric", []domain.Task{{ID: "abc"}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.tasks))
		})
	}
}
