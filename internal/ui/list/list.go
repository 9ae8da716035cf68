// Package list renders tasks as a table for the interactive view.
package list

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dhalman/todo/internal/domain"
)

// Fixed column widths. The title column takes what remains.
const (
	idWidth     = 5
	statusWidth = 10
	priWidth    = 7
	dueWidth    = 11
	tagsWidth   = 18
	subWidth    = 6
	cursorWidth = 2
)

// View represents a table-based list view for tasks
type View struct {
	tasks  []domain.Task
	cursor int
	styles *Styles
	width  int
	height int
}

// New creates a View with the given tasks and dimensions
func New(tasks []domain.Task, width, height int) *View {
	return &View{
		tasks:  tasks,
		cursor: 0,
		styles: NewStyles(),
		width:  width,
		height: height,
	}
}

// SetTasks replaces the displayed tasks, clamping the cursor
func (v *View) SetTasks(tasks []domain.Task) {
	v.tasks = tasks
	v.SetCursor(v.cursor)
}

// SetSize updates the view dimensions
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetCursor sets the cursor position, clamped to the task range
func (v *View) SetCursor(index int) {
	if index < 0 {
		v.cursor = 0
	} else if index >= len(v.tasks) {
		v.cursor = max(0, len(v.tasks)-1)
	} else {
		v.cursor = index
	}
}

// Cursor returns the current cursor position
func (v *View) Cursor() int {
	return v.cursor
}

// CursorTask returns the task under the cursor, if any
func (v *View) CursorTask() (domain.Task, bool) {
	if len(v.tasks) == 0 {
		return domain.Task{}, false
	}
	return v.tasks[v.cursor], true
}

// Render renders the full table
func (v *View) Render() string {
	if len(v.tasks) == 0 {
		return v.styles.Row.Render("No tasks to display")
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n")
	b.WriteString(v.styles.Separator.Render(strings.Repeat("─", max(v.width, 10))))
	b.WriteString("\n")

	for i, task := range v.tasks {
		b.WriteString(v.renderRow(i, task))
		if i < len(v.tasks)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *View) titleWidth() int {
	fixed := cursorWidth + idWidth + statusWidth + priWidth + dueWidth + tagsWidth + subWidth
	return max(10, v.width-fixed)
}

func (v *View) renderHeader() string {
	cells := []string{
		v.styles.HeaderCell.Width(cursorWidth).Render(" "),
		v.styles.HeaderCell.Width(idWidth).Render("ID"),
		v.styles.HeaderCell.Width(v.titleWidth()).Render("Title"),
		v.styles.HeaderCell.Width(statusWidth).Render("Status"),
		v.styles.HeaderCell.Width(priWidth).Render("Pri"),
		v.styles.HeaderCell.Width(dueWidth).Render("Due"),
		v.styles.HeaderCell.Width(tagsWidth).Render("Tags"),
		v.styles.HeaderCell.Width(subWidth).Render("Sub"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (v *View) renderRow(index int, task domain.Task) string {
	isActive := index == v.cursor

	rowStyle := v.styles.Row
	if isActive {
		rowStyle = v.styles.RowActive
	}

	cursor := "  "
	if isActive {
		cursor = v.styles.Cursor.Render("▶ ")
	}

	cells := []string{
		cursor,
		v.styles.ColID.Width(idWidth).Render(task.ID),
		rowStyle.Width(v.titleWidth()).Render(truncate(task.Title, v.titleWidth())),
		v.renderStatusCell(task.Status),
		v.renderPriorityCell(task.Priority),
		v.renderDueCell(task),
		v.styles.ColTags.Width(tagsWidth).Render(truncate(strings.Join(task.Tags, ","), tagsWidth)),
		v.renderSubtaskCell(task),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (v *View) renderStatusCell(status domain.Status) string {
	style := v.styles.StatusActive
	if status == domain.StatusCompleted {
		style = v.styles.StatusCompleted
	}
	return style.Width(statusWidth).Render(status.String())
}

func (v *View) renderPriorityCell(priority domain.Priority) string {
	var style lipgloss.Style
	switch priority {
	case domain.PriorityHigh:
		style = v.styles.PriorityHigh
	case domain.PriorityMedium:
		style = v.styles.PriorityMedium
	case domain.PriorityLow:
		style = v.styles.PriorityLow
	default:
		style = v.styles.Row
	}
	return style.Width(priWidth).Render(string(priority))
}

func (v *View) renderDueCell(task domain.Task) string {
	if task.Due == nil {
		return v.styles.Due.Width(dueWidth).Render("-")
	}

	style := v.styles.Due
	if task.Status == domain.StatusActive {
		switch domain.BucketOf(task, time.Now()) {
		case domain.BucketOverdue:
			style = v.styles.DueOverdue
		case domain.BucketToday:
			style = v.styles.DueToday
		}
	}
	return style.Width(dueWidth).Render(task.Due.Format("2006-01-02"))
}

func (v *View) renderSubtaskCell(task domain.Task) string {
	done, total := task.SubtaskProgress()
	if total == 0 {
		return v.styles.Due.Width(subWidth).Render("-")
	}
	return v.styles.Due.Width(subWidth).Render(fmt.Sprintf("%d/%d", done, total))
}

// truncate shortens a string to fit within the given width, adding an
// ellipsis when it does not fit.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
