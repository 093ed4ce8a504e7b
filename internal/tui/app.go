package tui

import (
	"context"
	"fmt"
	"time"

	"twodo/internal/logging"
	"twodo/internal/model"
	"twodo/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const listSeparator = "------------------------"

type appModel struct {
	board model.Board
	tab   model.Tab

	width  int
	height int

	keys keyMap
	help help.Model

	showHelp bool
	// Set by q: the next key press of any kind quits ("press any key to
	// exit" pause), after which the caller saves.
	exiting bool

	fatalErr error

	history *store.History
	logger  *log.Logger

	dateLine string
}

func newAppModel(opts Options) appModel {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return appModel{
		board:    opts.Board,
		tab:      model.TabTodo,
		width:    80,
		keys:     defaultKeyMap(),
		help:     help.New(),
		history:  opts.History,
		logger:   logger,
		dateLine: time.Now().Format("02/01/2006"),
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.exiting {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.exiting = true
		case key.Matches(msg, m.keys.Up):
			m.board.List(m.tab).SelectionUp()
		case key.Matches(msg, m.keys.Down):
			m.board.List(m.tab).SelectionDown()
		case key.Matches(msg, m.keys.Transfer):
			m.transferSelected()
		case key.Matches(msg, m.keys.Copy):
			m.copyDone()
		case key.Matches(msg, m.keys.Export):
			if err := store.Export(m.board); err != nil {
				m.fatalErr = err
				return m, tea.Quit
			}
			m.logger.Debug("exported board", "file", store.ExportFileName)
		case key.Matches(msg, m.keys.ToggleTab):
			m.tab = m.tab.Toggle()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		}
		// Anything unmatched is ignored.
		return m, nil
	}
	return m, nil
}

// transferSelected moves the active list's selected item to the other list:
// Todo -> Done completes, Done -> Todo reopens.
func (m *appModel) transferSelected() {
	src := m.board.List(m.tab)
	dst := m.board.List(m.tab.Toggle())
	item, ok := src.Selected()
	if !ok {
		return
	}
	model.Transfer(src, dst)

	action := store.ActionComplete
	if m.tab == model.TabDone {
		action = store.ActionReopen
	}
	m.logger.Debug("transfer", "action", action, "item", item)
	m.record(action, item)
}

// copyDone appends the done list's selected item to todo without removing it
// from done. Works from either tab and always reads the done selection.
func (m *appModel) copyDone() {
	item, ok := m.board.Done.Selected()
	if !ok {
		return
	}
	m.board.Todo.Append(item)
	m.logger.Debug("copy", "item", item)
	m.record(store.ActionCopy, item)
}

// record appends to the transfer journal when one is configured. Journal
// failures are logged, never fatal: the journal is observability, not state.
func (m *appModel) record(action, item string) {
	if m.history == nil {
		return
	}
	if err := m.history.Record(context.Background(), action, item); err != nil {
		m.logger.Error("history record failed", "err", err)
	}
}

func (m appModel) View() string {
	if m.showHelp {
		return renderHelp(m.width)
	}

	f := newFrame(m.width)
	f.begin(0, 0)
	switch m.tab {
	case model.TabTodo:
		f.label(fmt.Sprintf("[TODO] DONE  %s:", m.dateLine), styleHeader())
		f.label(listSeparator, styleMuted())
		f.beginList(m.board.Todo.Cursor)
		for i, item := range m.board.Todo.Items {
			f.listElement("[ ] "+item, i)
		}
		f.endList()
		if m.board.Todo.Len() == 0 {
			f.label("Everything done, enjoy the day", styleMuted())
		}
	case model.TabDone:
		f.label(fmt.Sprintf(" TODO [DONE] %s:", m.dateLine), styleHeader())
		f.label(listSeparator, styleMuted())
		f.beginList(m.board.Done.Cursor)
		for i, item := range m.board.Done.Items {
			f.listElement("[x] "+item, i)
		}
		f.endList()
	}
	if m.exiting {
		f.label("press any key to exit", styleMuted())
	}
	f.end()

	return f.String() + "\n\n" + m.help.View(m.keys)
}
