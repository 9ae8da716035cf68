package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhalman/todo/internal/app"
	"github.com/dhalman/todo/internal/cli"
	"github.com/dhalman/todo/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// No subcommand opens the interactive list
	if len(os.Args) < 2 {
		runTUI(cfg)
		return
	}

	deps := cli.NewDependencies(cfg)
	args := os.Args[2:]

	switch os.Args[1] {
	case "add":
		err = cli.AddCommand(deps, args)
	case "list":
		err = cli.ListCommand(deps, args)
	case "complete":
		err = cli.CompleteCommand(deps, args)
	case "update":
		err = cli.UpdateCommand(deps, args)
	case "delete":
		err = cli.DeleteCommand(deps, args)
	case "search":
		err = cli.SearchCommand(deps, args)
	case "stats":
		err = cli.StatsCommand(deps, args)
	case "subtask":
		err = cli.SubtaskCommand(deps, args)
	case "help", "-h", "--help":
		cli.PrintUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		cli.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg *config.Config) {
	deps := cli.NewDependencies(cfg)
	tasks, err := deps.Store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	model := app.New(cfg, deps.Store, tasks)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
