// Package cli wires the command line: one positional task-file argument,
// load -> interactive TUI -> save.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"twodo/internal/logging"
	"twodo/internal/store"
	"twodo/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	HistoryPath string
	LogFile     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "twodo <task-file>",
		Short:        "Two-list terminal task tracker",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Track tasks in a plain-text file
  twodo TODO.txt

  # Keep a journal of completed/reopened items beside it
  twodo --history .twodo-journal.sqlite TODO.txt
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				// Usage goes to stderr before any UI state is touched.
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return errors.New("expected exactly one task-file argument")
			}
			return run(app, args[0])
		},
	}

	cmd.Flags().StringVar(&app.HistoryPath, "history", envOr("TWODO_HISTORY", ""), "Path to a SQLite transfer journal (optional)")
	cmd.Flags().StringVar(&app.LogFile, "log-file", envOr("TWODO_LOG", ""), "Append debug logs to this file (stdout belongs to the TUI)")

	return cmd
}

func run(app *App, path string) error {
	logger, closeLog, err := logging.Open(app.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	// Load fully before the terminal is touched; a malformed file must
	// never reach the UI or a partial save.
	board, err := store.Load(path)
	if err != nil {
		return err
	}
	logger.Info("loaded task file", "path", path,
		"todo", board.Todo.Len(), "done", board.Done.Len())

	var history *store.History
	if app.HistoryPath != "" {
		history, err = store.OpenHistory(context.Background(), app.HistoryPath)
		if err != nil {
			return err
		}
		defer func() { _ = history.Close() }()
	}

	final, err := tui.Run(tui.Options{Board: board, History: history, Logger: logger})
	if err != nil {
		return err
	}

	if err := store.Save(path, final); err != nil {
		return err
	}
	logger.Info("saved task file", "path", path,
		"todo", final.Todo.Len(), "done", final.Done.Len())
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
