package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the UI styles shared across the interactive view
type Styles struct {
	// Header
	AppTitle lipgloss.Style
	Counts   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Messages
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	// Search bar
	SearchBar lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		AppTitle: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Padding(0, 1),

		Counts: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Text),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Green),

		StatusError: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		SearchBar: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0),
	}
}
