// Package cli implements the todo subcommands. Every command follows
// the same shape: load the full task list, operate on it in memory,
// and save it back if anything changed.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dhalman/todo/internal/config"
	"github.com/dhalman/todo/internal/domain"
	"github.com/dhalman/todo/internal/storage"
)

const dueDateLayout = "2006-01-02"

// Dependencies holds the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Store  *storage.Store
	Logger *log.Logger
}

// NewDependencies creates a Dependencies instance for the given config
func NewDependencies(cfg *config.Config) *Dependencies {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
	if os.Getenv("TODO_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	return &Dependencies{
		Config: cfg,
		Store:  storage.New(cfg.Storage.Path),
		Logger: logger,
	}
}

// AddCommand creates a new task
func AddCommand(deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	priority := fs.String("priority", "medium", "task priority: low, medium, high")
	due := fs.String("due", "", "due date (YYYY-MM-DD)")
	tags := fs.String("tags", "", "comma-separated tags")
	desc := fs.String("desc", "", "task description")

	title, rest := splitTitle(args)
	if err := fs.Parse(rest); err != nil {
		return err
	}

	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	task := domain.NewTask(storage.NextID(tasks), title)
	task.Description = *desc
	task.Priority = domain.Priority(*priority)
	task.Tags = parseTags(*tags)
	if *due != "" {
		d, err := parseDue(*due)
		if err != nil {
			return err
		}
		task.Due = &d
	}

	if err := task.Validate(); err != nil {
		return err
	}

	tasks = append(tasks, task)
	if err := deps.Store.Save(tasks); err != nil {
		return err
	}

	deps.Logger.Debug("task added", "id", task.ID, "title", task.Title)
	fmt.Printf("Added task %s: %s\n", task.ID, task.Title)
	return nil
}

// ListCommand prints tasks matching the given filter and sort flags
func ListCommand(deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status: active, completed")
	priority := fs.String("priority", "", "filter by priority: low, medium, high")
	due := fs.String("due", "", "filter by due bucket: overdue, today, upcoming, none")
	tags := fs.String("tags", "", "filter by tags (comma-separated, any match)")
	sortBy := fs.String("sort", deps.Config.List.Sort, "sort by: title, priority, due, created")
	order := fs.String("order", deps.Config.List.Order, "sort order: asc, desc")

	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := buildFilter(*status, *priority, *due, *tags)
	if err != nil {
		return err
	}

	field, err := domain.ParseSortField(*sortBy)
	if err != nil {
		return err
	}
	direction, err := domain.ParseSortOrder(*order)
	if err != nil {
		return err
	}

	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	sort := domain.Sort{Field: field, Order: direction}
	result := sort.Apply(filter.Apply(tasks))

	if len(result) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	printTasks(result)
	return nil
}

// CompleteCommand marks a task as completed
func CompleteCommand(deps *Dependencies, args []string) error {
	if len(args) < 1 {
		return &domain.ValidationError{Field: "id", Message: "usage: todo complete <id>"}
	}
	id := args[0]

	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	i, err := domain.Find(tasks, id)
	if err != nil {
		return err
	}
	tasks[i].Complete()

	if err := deps.Store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Completed task %s: %s\n", id, tasks[i].Title)
	return nil
}

// UpdateCommand changes task properties. Only flags that were set on
// the command line are applied.
func UpdateCommand(deps *Dependencies, args []string) error {
	if len(args) < 1 {
		return &domain.ValidationError{Field: "id", Message: "usage: todo update <id> [flags]"}
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	title := fs.String("title", "", "new title")
	desc := fs.String("desc", "", "new description")
	priority := fs.String("priority", "", "new priority: low, medium, high")
	status := fs.String("status", "", "new status: active, completed")
	due := fs.String("due", "", "new due date (YYYY-MM-DD), or 'none' to clear")
	tags := fs.String("tags", "", "new tags (comma-separated)")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	i, err := domain.Find(tasks, id)
	if err != nil {
		return err
	}
	task := &tasks[i]

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			task.Title = *title
		case "desc":
			task.Description = *desc
		case "priority":
			task.Priority = domain.Priority(*priority)
		case "status":
			task.Status = domain.Status(*status)
		case "due":
			if *due == "none" {
				task.Due = nil
				return
			}
			d, err := parseDue(*due)
			if err != nil {
				parseErr = err
				return
			}
			task.Due = &d
		case "tags":
			task.Tags = parseTags(*tags)
		}
	})
	if parseErr != nil {
		return parseErr
	}

	if err := task.Validate(); err != nil {
		return err
	}
	task.Touch()

	if err := deps.Store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Updated task %s\n", id)
	return nil
}

// DeleteCommand removes a task and its subtasks
func DeleteCommand(deps *Dependencies, args []string) error {
	if len(args) < 1 {
		return &domain.ValidationError{Field: "id", Message: "usage: todo delete <id>"}
	}
	id := args[0]

	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	tasks, err = domain.Remove(tasks, id)
	if err != nil {
		return err
	}

	if err := deps.Store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s\n", id)
	return nil
}

// SearchCommand prints tasks whose title or description contains the query
func SearchCommand(deps *Dependencies, args []string) error {
	if len(args) < 1 {
		return &domain.ValidationError{Field: "query", Message: "usage: todo search <query>"}
	}
	query := strings.Join(args, " ")

	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	result := domain.Search(tasks, query)
	if len(result) == 0 {
		fmt.Printf("No tasks found for %q\n", query)
		return nil
	}
	printTasks(result)
	return nil
}

// StatsCommand prints task statistics
func StatsCommand(deps *Dependencies, args []string) error {
	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	s := domain.Collect(tasks, time.Now())

	fmt.Println("Task statistics:")
	fmt.Printf("  Total:      %d\n", s.Total)
	fmt.Printf("  Active:     %d\n", s.Active)
	fmt.Printf("  Completed:  %d\n", s.Completed)
	fmt.Printf("  Overdue:    %d\n", s.Overdue)
	fmt.Printf("  Completion: %.1f%%\n", s.CompletionRate)
	fmt.Println("  By priority:")
	for _, p := range []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		fmt.Printf("    %-7s %d\n", p.String()+":", s.ByPriority[p])
	}
	return nil
}

// SubtaskCommand handles `subtask add` and `subtask complete`
func SubtaskCommand(deps *Dependencies, args []string) error {
	if len(args) < 2 {
		return &domain.ValidationError{Message: "usage: todo subtask add <task-id> <title> | todo subtask complete <task-id> <subtask-id>"}
	}
	action, taskID := args[0], args[1]

	tasks, err := deps.Store.Load()
	if err != nil {
		return err
	}

	i, err := domain.Find(tasks, taskID)
	if err != nil {
		return err
	}

	switch action {
	case "add":
		if len(args) < 3 {
			return &domain.ValidationError{Field: "title", Message: "usage: todo subtask add <task-id> <title>"}
		}
		st, err := tasks[i].AddSubtask(strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		if err := deps.Store.Save(tasks); err != nil {
			return err
		}
		fmt.Printf("Added subtask %s to task %s\n", st.ID, taskID)
		return nil

	case "complete":
		if len(args) < 3 {
			return &domain.ValidationError{Field: "subtask id", Message: "usage: todo subtask complete <task-id> <subtask-id>"}
		}
		if err := tasks[i].CompleteSubtask(args[2]); err != nil {
			return err
		}
		if err := deps.Store.Save(tasks); err != nil {
			return err
		}
		fmt.Printf("Completed subtask %s\n", args[2])
		return nil

	default:
		return &domain.ValidationError{Message: fmt.Sprintf("unknown subtask action %q", action)}
	}
}

// PrintUsage prints CLI usage information
func PrintUsage() {
	usage := `Usage: todo [command] [arguments]

Commands:
  (no command)                          Start the interactive task list
  add <title> [flags]                   Add a task
  list [flags]                          List tasks with filters and sorting
  complete <id>                         Mark a task completed
  update <id> [flags]                   Change task properties
  delete <id>                           Delete a task
  search <query>                        Find tasks by title or description
  stats                                 Show task statistics
  subtask add <task-id> <title>         Add a subtask
  subtask complete <task-id> <sub-id>   Complete a subtask
  help                                  Show this help message

Examples:
  todo add "Write report" -priority high -due 2025-12-31 -tags work
  todo list -status active -sort priority -order desc
  todo list -due overdue
  todo complete 3
  todo search meeting
`
	fmt.Print(usage)
}

// printTasks renders tasks as a table
func printTasks(tasks []domain.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRI\tTITLE\tDUE\tTAGS\tSUBTASKS")

	for _, t := range tasks {
		due := "-"
		if t.Due != nil {
			due = t.Due.Format(dueDateLayout)
		}
		tags := "-"
		if len(t.Tags) > 0 {
			tags = strings.Join(t.Tags, ",")
		}
		subtasks := "-"
		if done, total := t.SubtaskProgress(); total > 0 {
			subtasks = fmt.Sprintf("%d/%d", done, total)
		}
		title := t.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Status, t.Priority, title, due, tags, subtasks)
	}

	w.Flush()
}

// buildFilter translates list flags into a domain filter
func buildFilter(status, priority, due, tags string) (*domain.Filter, error) {
	f := domain.NewFilter()

	if status != "" {
		s := domain.Status(status)
		if !s.Valid() {
			return nil, &domain.ValidationError{Field: "status", Message: "must be one of: active, completed"}
		}
		f.ToggleStatus(s)
	}
	if priority != "" {
		p := domain.Priority(priority)
		if !p.Valid() {
			return nil, &domain.ValidationError{Field: "priority", Message: "must be one of: low, medium, high"}
		}
		f.TogglePriority(p)
	}
	if due != "" {
		bucket, err := domain.ParseBucket(due)
		if err != nil {
			return nil, err
		}
		f.Due = &bucket
	}
	if tags != "" {
		f.Tags = parseTags(tags)
	}
	return f, nil
}

// parseDue parses a YYYY-MM-DD due date in local time
func parseDue(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dueDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: "due", Message: "must be a date in YYYY-MM-DD format"}
	}
	return d, nil
}

// parseTags splits a comma-separated tag list, dropping empty entries
func parseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// splitTitle separates the positional title from trailing flags
func splitTitle(args []string) (string, []string) {
	var words []string
	i := 0
	for ; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			break
		}
		words = append(words, args[i])
	}
	return strings.Join(words, " "), args[i:]
}
