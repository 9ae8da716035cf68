package list

import (
	"strings"
	"testing"
	"time"

	"github.com/dhalman/todo/internal/domain"
)

func sampleTasks() []domain.Task {
	due := time.Now().AddDate(0, 0, 2)
	return []domain.Task{
		{ID: "1", Title: "Write report", Status: domain.StatusActive, Priority: domain.PriorityHigh, Tags: []string{"work"}},
		{ID: "2", Title: "Groceries", Status: domain.StatusActive, Priority: domain.PriorityLow, Due: &due},
		{ID: "3", Title: "Old chore", Status: domain.StatusCompleted, Priority: domain.PriorityMedium},
	}
}

func TestView_Render(t *testing.T) {
	v := New(sampleTasks(), 120, 24)
	out := v.Render()

	for _, want := range []string{"Write report", "Groceries", "Old chore", "Title", "Status"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if !strings.Contains(out, "▶") {
		t.Error("Render() should mark the cursor row")
	}
}

func TestView_Render_Empty(t *testing.T) {
	v := New(nil, 120, 24)
	out := v.Render()

	if !strings.Contains(out, "No tasks to display") {
		t.Errorf("Render() = %q, want empty-list message", out)
	}
}

func TestView_SetCursor_Clamps(t *testing.T) {
	v := New(sampleTasks(), 120, 24)

	tests := []struct {
		name  string
		set   int
		want  int
	}{
		{"negative clamps to zero", -5, 0},
		{"in range", 2, 2},
		{"past end clamps to last", 99, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.SetCursor(tt.set)
			if got := v.Cursor(); got != tt.want {
				t.Errorf("Cursor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestView_SetTasks_ClampsCursor(t *testing.T) {
	v := New(sampleTasks(), 120, 24)
	v.SetCursor(2)

	v.SetTasks(sampleTasks()[:1])
	if got := v.Cursor(); got != 0 {
		t.Errorf("Cursor() after shrink = %d, want 0", got)
	}
}

func TestView_CursorTask(t *testing.T) {
	v := New(sampleTasks(), 120, 24)
	v.SetCursor(1)

	task, ok := v.CursorTask()
	if !ok {
		t.Fatal("CursorTask() should find a task")
	}
	if task.ID != "2" {
		t.Errorf("CursorTask() = %s, want 2", task.ID)
	}

	empty := New(nil, 120, 24)
	if _, ok := empty.CursorTask(); ok {
		t.Error("CursorTask() on empty view should report false")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"a very long title that keeps going", 10, "a very ..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
