package list

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dhalman/todo/internal/ui/styles"
)

// Styles holds the styling for the task list view
type Styles struct {
	// Table structure
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style

	// Row styles
	Row       lipgloss.Style
	RowActive lipgloss.Style

	// Column styles
	ColID   lipgloss.Style
	ColTags lipgloss.Style

	// Status colors
	StatusActive    lipgloss.Style
	StatusCompleted lipgloss.Style

	// Priority colors
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Due date colors
	DueOverdue lipgloss.Style
	DueToday   lipgloss.Style
	Due        lipgloss.Style

	// Indicators
	Cursor lipgloss.Style
}

// NewStyles creates a new Styles instance with the Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		ColID: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Bold(true),

		ColTags: lipgloss.NewStyle().
			Foreground(styles.Mauve),

		StatusActive: lipgloss.NewStyle().
			Foreground(styles.Blue),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(styles.Green),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(styles.Yellow),

		PriorityLow: lipgloss.NewStyle().
			Foreground(styles.Green),

		DueOverdue: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		DueToday: lipgloss.NewStyle().
			Foreground(styles.Peach),

		Due: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),
	}
}
