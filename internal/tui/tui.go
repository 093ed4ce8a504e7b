// Package tui renders the two-list tracker with an immediate-mode frame
// inside a bubbletea program.
package tui

import (
	"fmt"

	"twodo/internal/model"
	"twodo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Options configures one interactive session.
type Options struct {
	Board   model.Board
	History *store.History // optional transfer journal
	Logger  *log.Logger    // nil means discard
}

// Run drives the tracker until the user quits and returns the final board
// for the caller to persist. The bubbletea program owns the terminal's raw
// state and restores it on every exit path, panics included.
func Run(opts Options) (model.Board, error) {
	applyColorProfilePreference()
	applyThemePreference()

	out, err := tea.NewProgram(newAppModel(opts), tea.WithAltScreen()).Run()
	if err != nil {
		return model.Board{}, fmt.Errorf("run tui: %w", err)
	}
	final := out.(appModel)
	if final.fatalErr != nil {
		return model.Board{}, final.fatalErr
	}
	return final.board, nil
}
