// Package app contains the interactive task list model and TEA
// implementation.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dhalman/todo/internal/config"
	"github.com/dhalman/todo/internal/domain"
	"github.com/dhalman/todo/internal/storage"
	"github.com/dhalman/todo/internal/ui/list"
	"github.com/dhalman/todo/internal/ui/styles"
)

// Mode represents the input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "SEARCH"
	}
	return "NORMAL"
}

// statusFilterCycle orders the states the `a` key steps through:
// everything, active only, completed only.
var statusFilterCycle = []*domain.Status{
	nil,
	statusPtr(domain.StatusActive),
	statusPtr(domain.StatusCompleted),
}

// bucketCycle orders the states the `f` key steps through.
var bucketCycle = []*domain.DueBucket{
	nil,
	bucketPtr(domain.BucketOverdue),
	bucketPtr(domain.BucketToday),
	bucketPtr(domain.BucketUpcoming),
	bucketPtr(domain.BucketNone),
}

func statusPtr(s domain.Status) *domain.Status       { return &s }
func bucketPtr(b domain.DueBucket) *domain.DueBucket { return &b }

// Model is the interactive task list state
type Model struct {
	// Core data
	store *storage.Store
	tasks []domain.Task

	// Presentation state
	filter      *domain.Filter
	sort        domain.Sort
	statusIdx   int
	bucketIdx   int
	listView    *list.View
	searchInput textinput.Model
	mode        Mode

	// Transient message line
	message string
	isError bool

	// Terminal size
	width  int
	height int

	styles *styles.Styles
}

// New creates the model with tasks already loaded from the store.
func New(cfg *config.Config, store *storage.Store, tasks []domain.Task) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search..."
	ti.CharLimit = 100
	ti.Width = 50

	field, err := domain.ParseSortField(cfg.List.Sort)
	if err != nil {
		field = domain.SortByDue
	}
	order, err := domain.ParseSortOrder(cfg.List.Order)
	if err != nil {
		order = domain.SortAsc
	}

	m := Model{
		store:       store,
		tasks:       tasks,
		filter:      domain.NewFilter(),
		sort:        domain.Sort{Field: field, Order: order},
		listView:    list.New(nil, 80, 24),
		searchInput: ti,
		styles:      styles.New(),
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listView.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeSearch {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	m.isError = false

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.listView.SetCursor(m.listView.Cursor() + 1)

	case "k", "up":
		m.listView.SetCursor(m.listView.Cursor() - 1)

	case "g", "home":
		m.listView.SetCursor(0)

	case "G", "end":
		m.listView.SetCursor(len(m.visible()) - 1)

	case "/":
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "c":
		return m.completeCursorTask()

	case "D":
		return m.deleteCursorTask()

	case "p":
		m.sort.Toggle(domain.SortByPriority)
		m.refresh()

	case "d":
		m.sort.Toggle(domain.SortByDue)
		m.refresh()

	case "t":
		m.sort.Toggle(domain.SortByTitle)
		m.refresh()

	case "n":
		m.sort.Toggle(domain.SortByCreated)
		m.refresh()

	case "a":
		m.statusIdx = (m.statusIdx + 1) % len(statusFilterCycle)
		m.applyCycles()

	case "f":
		m.bucketIdx = (m.bucketIdx + 1) % len(bucketCycle)
		m.applyCycles()

	case "x":
		m.statusIdx = 0
		m.bucketIdx = 0
		m.searchInput.SetValue("")
		m.filter.Clear()
		m.refresh()

	case "r":
		tasks, err := m.store.Load()
		if err != nil {
			return m.fail(err)
		}
		m.tasks = tasks
		m.refresh()
		m.info("reloaded")
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		// Keep the query active, leave search mode
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil

	case tea.KeyEsc:
		// Drop the query entirely
		m.mode = ModeNormal
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.filter.Query = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.Query = m.searchInput.Value()
	m.refresh()
	return m, cmd
}

func (m *Model) completeCursorTask() (tea.Model, tea.Cmd) {
	task, ok := m.listView.CursorTask()
	if !ok {
		return *m, nil
	}

	i, err := domain.Find(m.tasks, task.ID)
	if err != nil {
		return m.fail(err)
	}
	m.tasks[i].Complete()

	if err := m.store.Save(m.tasks); err != nil {
		return m.fail(err)
	}
	m.refresh()
	m.info(fmt.Sprintf("completed %s", task.ID))
	return *m, nil
}

func (m *Model) deleteCursorTask() (tea.Model, tea.Cmd) {
	task, ok := m.listView.CursorTask()
	if !ok {
		return *m, nil
	}

	tasks, err := domain.Remove(m.tasks, task.ID)
	if err != nil {
		return m.fail(err)
	}
	m.tasks = tasks

	if err := m.store.Save(m.tasks); err != nil {
		return m.fail(err)
	}
	m.refresh()
	m.info(fmt.Sprintf("deleted %s", task.ID))
	return *m, nil
}

// applyCycles translates the status/bucket cycle positions onto the filter
func (m *Model) applyCycles() {
	m.filter.Status = make(map[domain.Status]bool)
	if s := statusFilterCycle[m.statusIdx]; s != nil {
		m.filter.Status[*s] = true
	}
	m.filter.Due = bucketCycle[m.bucketIdx]
	m.refresh()
}

// refresh recomputes the visible task list
func (m *Model) refresh() {
	m.listView.SetTasks(m.visible())
}

func (m *Model) visible() []domain.Task {
	return m.sort.Apply(m.filter.Apply(m.tasks))
}

func (m *Model) info(text string) {
	m.message = text
	m.isError = false
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.message = err.Error()
	m.isError = true
	return *m, nil
}

// View implements tea.Model
func (m Model) View() string {
	header := m.renderHeader()
	body := m.listView.Render()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	title := m.styles.AppTitle.Render("todo")

	visible := len(m.visible())
	counts := fmt.Sprintf("%d/%d tasks", visible, len(m.tasks))
	if m.filter.IsActive() {
		counts += " (filtered)"
	}
	counts += fmt.Sprintf(" • sort: %s", m.sort.Field)
	if m.sort.Order == domain.SortDesc {
		counts += " ↓"
	} else {
		counts += " ↑"
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, title, " ", m.styles.Counts.Render(counts))
}

func (m Model) renderFooter() string {
	if m.mode == ModeSearch {
		return m.styles.SearchBar.Width(m.width).Render(m.searchInput.View())
	}

	if m.message != "" {
		style := m.styles.StatusInfo
		if m.isError {
			style = m.styles.StatusError
		}
		return style.Render(m.message)
	}

	mode := m.styles.StatusMode.Render(" " + m.mode.String() + " ")
	hints := m.styles.StatusHint.Render(
		"j/k move • / search • c complete • D delete • p/d/t/n sort • a status • f due • x clear • q quit")
	return m.styles.StatusBar.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Left, mode, " ", hints))
}
